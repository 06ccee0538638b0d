package geometry

import (
	"errors"
)

var (
	// ErrDegenerateDirection is returned when an operation needs a direction but gets a zero vector
	ErrDegenerateDirection = errors.New("zero vector has no direction")
	// ErrInvalidConstruction is returned when a hyperplane is built from a zero normal
	ErrInvalidConstruction = errors.New("normalX or normalY must be nonzero")
)

// Label marks the class of a point, it's either +1 or -1
type Label int8

// Possible labels
const (
	Negative Label = -1
	Positive Label = 1
)

// Planar is anything which has coordinates in the plane.
// Hyperplane exposes its normal this way.
type Planar interface {
	XY() (float64, float64)
}

// Vector holds a point (or a direction) in the plane with its class label
type Vector struct {
	X     float64
	Y     float64
	Label Label
}

// Hyperplane holds the set of points x for which <Normal, x> = Offset.
// Normal's label is meaningless and ignored.
type Hyperplane struct {
	Normal Vector
	Offset float64
}
