package geometry

import (
	"fmt"

	cm "github.com/gasparian/hyperplane-geometry-go/common"
	"gonum.org/v1/gonum/blas/blas64"
)

// NewLabel converts any integer to a label: negatives become -1, the rest (zero included) +1
func NewLabel(v int) Label {
	if v < 0 {
		return Negative
	}
	return Positive
}

// Sign returns label as a float multiplier; the zero value counts as +1
func (l Label) Sign() float64 {
	if l < 0 {
		return -1.0
	}
	return 1.0
}

func (l Label) String() string {
	if l < 0 {
		return "-1"
	}
	return "+1"
}

// NewVector creates labeled vector
func NewVector(x, y float64, label int) Vector {
	return Vector{X: x, Y: y, Label: NewLabel(label)}
}

// Vec creates vector with the default +1 label
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y, Label: Positive}
}

// XY returns vector coordinates
func (v Vector) XY() (float64, float64) {
	return v.X, v.Y
}

// Data returns coordinates as a fresh slice
func (v Vector) Data() []float64 {
	return []float64{v.X, v.Y}
}

func (v Vector) blas() blas64.Vector {
	return cm.NewVec(v.Data())
}

func (v Vector) withData(data []float64) Vector {
	return Vector{X: data[0], Y: data[1], Label: v.Label}
}

// InnerProduct calculates dot product of the two vectors
func InnerProduct(a, b Vector) float64 {
	return blas64.Dot(a.blas(), b.blas())
}

// Dot calculates dot product of any two planar values
func Dot(a, b Planar) float64 {
	ax, ay := a.XY()
	bx, by := b.XY()
	return ax*bx + ay*by
}

// Norm returns euclidean length of the vector
func (v Vector) Norm() float64 {
	return blas64.Nrm2(v.blas())
}

// DistanceTo returns euclidean distance between v and w
func (v Vector) DistanceTo(w Vector) float64 {
	return cm.L2(v.blas(), w.blas())
}

// IsZero is true when both coordinates are zero
func (v Vector) IsZero() bool {
	return cm.IsZeroVector(v.blas())
}

// Normalized returns unit vector with the same direction
func (v Vector) Normalized() (Vector, error) {
	norm := v.Norm()
	if norm == 0 {
		return Vector{}, ErrDegenerateDirection
	}
	return Vector{X: v.X / norm, Y: v.Y / norm, Label: v.Label}, nil
}

// Scale multiplies both coordinates by the factor
func (v Vector) Scale(factor float64) Vector {
	res := v.blas()
	blas64.Scal(factor, res)
	return v.withData(res.Data)
}

// Add returns v + w, keeping v's label
func (v Vector) Add(w Vector) Vector {
	res := v.blas()
	blas64.Axpy(1.0, w.blas(), res)
	return v.withData(res.Data)
}

// Sub returns v - w, keeping v's label
func (v Vector) Sub(w Vector) Vector {
	res := v.blas()
	blas64.Axpy(-1.0, w.blas(), res)
	return v.withData(res.Data)
}

// MoveBy returns the copy of v shifted by (dx, dy)
func (v Vector) MoveBy(dx, dy float64) Vector {
	return Vector{X: v.X + dx, Y: v.Y + dy, Label: v.Label}
}

// Project returns orthogonal projection of v onto the direction of w
func (v Vector) Project(w Vector) (Vector, error) {
	unit, err := w.Normalized()
	if err != nil {
		return Vector{}, err
	}
	signedLength := InnerProduct(v, unit)
	return v.withData(unit.Scale(signedLength).Data()), nil
}

func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Label)
}
