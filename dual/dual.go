// Package dual builds a separating hyperplane from labeled points the way a kernel
// classifier does: the normal is a weighted sum of the points, w = sum(alpha_i * y_i * x_i).
// Weights are not optimized here, callers usually draw them at random.
package dual

import (
	"errors"
	"fmt"
	"math/rand"

	cm "github.com/gasparian/hyperplane-geometry-go/common"
	geo "github.com/gasparian/hyperplane-geometry-go/geometry"
	"gonum.org/v1/gonum/blas/blas64"
)

var (
	// ErrLengthMismatch is returned when points and weights have different lengths
	ErrLengthMismatch = errors.New("points and weights must have the same length")
)

func checkLengths(points []geo.Vector, weights []float64) error {
	if len(points) != len(weights) {
		return fmt.Errorf("%v points, %v weights: %w", len(points), len(weights), ErrLengthMismatch)
	}
	return nil
}

// WeightedSum returns sum(weights[i] * label[i] * points[i])
func WeightedSum(points []geo.Vector, weights []float64) (geo.Vector, error) {
	if err := checkLengths(points, weights); err != nil {
		return geo.Vector{}, err
	}
	sum := cm.NewVec(make([]float64, 2))
	for i, p := range points {
		blas64.Axpy(weights[i]*p.Label.Sign(), cm.NewVec(p.Data()), sum)
	}
	return geo.Vec(sum.Data[0], sum.Data[1]), nil
}

// BuildFromWeightedPoints returns hyperplane through the origin whose normal is
// the weighted sum of labeled points rescaled to targetNorm
func BuildFromWeightedPoints(points []geo.Vector, weights []float64, targetNorm float64) (geo.Hyperplane, error) {
	sum, err := WeightedSum(points, weights)
	if err != nil {
		return geo.Hyperplane{}, err
	}
	unit, err := sum.Normalized()
	if err != nil {
		return geo.Hyperplane{}, err
	}
	normal := unit.Scale(targetNorm)
	if normal.IsZero() {
		return geo.Hyperplane{}, geo.ErrDegenerateDirection
	}
	return geo.Hyperplane{Normal: normal, Offset: 0}, nil
}

// RandomWeights draws n weights uniformly from [0, 1)
func RandomWeights(rng *rand.Rand, n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = rng.Float64()
	}
	return weights
}

// DecisionValue evaluates bias + <w, x> with w expressed through the dual weights
func DecisionValue(points []geo.Vector, weights []float64, bias float64, x geo.Vector) (float64, error) {
	if err := checkLengths(points, weights); err != nil {
		return 0, err
	}
	res := bias
	for i, p := range points {
		res += weights[i] * p.Label.Sign() * geo.InnerProduct(p, x)
	}
	return res, nil
}
