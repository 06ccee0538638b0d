// Package classifier holds the linear decision rule: on which side of the hyperplane a point lies.
package classifier

import (
	"errors"
	"math"

	geo "github.com/gasparian/hyperplane-geometry-go/geometry"
)

var (
	// ErrEmptySample is returned when there is nothing to measure the accuracy on
	ErrEmptySample = errors.New("sample must contain at least one point")
)

// SideOf returns +1 if <p, normal> - offset >= 0 and -1 otherwise.
// Points lying exactly on the hyperplane go to the +1 side.
func SideOf(p geo.Vector, h geo.Hyperplane) geo.Label {
	prod := geo.Dot(p, h) - h.Offset
	if math.Signbit(prod) && prod != 0 { // NOTE: Signbit is true for -0.0 as well
		return geo.Negative
	}
	return geo.Positive
}

// Classify labels every point by the hyperplane
func Classify(points []geo.Vector, h geo.Hyperplane) []geo.Label {
	labels := make([]geo.Label, len(points))
	for i, p := range points {
		labels[i] = SideOf(p, h)
	}
	return labels
}

// Label returns the copy of p with the label assigned by the hyperplane
func Label(p geo.Vector, h geo.Hyperplane) geo.Vector {
	p.Label = SideOf(p, h)
	return p
}

// Accuracy returns the fraction of points whose label agrees with the hyperplane
func Accuracy(points []geo.Vector, h geo.Hyperplane) (float64, error) {
	if len(points) == 0 {
		return 0, ErrEmptySample
	}
	correct := 0
	for _, p := range points {
		if SideOf(p, h).Sign() == p.Label.Sign() {
			correct++
		}
	}
	return float64(correct) / float64(len(points)), nil
}

// SignedDistance returns (<p, normal> - offset) / |normal|
func SignedDistance(p geo.Vector, h geo.Hyperplane) (float64, error) {
	norm := h.Normal.Norm()
	if norm == 0 {
		return 0, geo.ErrDegenerateDirection
	}
	return (geo.Dot(p, h) - h.Offset) / norm, nil
}
