package geometry

import (
	"fmt"
	"math"

	cm "github.com/gasparian/hyperplane-geometry-go/common"
)

// New creates hyperplane <(normalX, normalY), x> = offset
func New(normalX, normalY, offset float64) (Hyperplane, error) {
	return FromNormal(Vec(normalX, normalY), offset)
}

// FromNormal creates hyperplane from the existing normal vector, its label is dropped
func FromNormal(normal Vector, offset float64) (Hyperplane, error) {
	if normal.X == 0 && normal.Y == 0 {
		return Hyperplane{}, ErrInvalidConstruction
	}
	return Hyperplane{
		Normal: Vec(normal.X, normal.Y),
		Offset: offset,
	}, nil
}

// UnitNormal returns normalized normal vector
func (h Hyperplane) UnitNormal() (Vector, error) {
	return Vec(h.Normal.X, h.Normal.Y).Normalized()
}

// SpanningVector returns unit vector lying in the hyperplane.
// It solves <normal, v> = 0 by fixing one coordinate to 1, so the sign
// of the result depends only on the normal. For nonzero X the solution
// (-Y/X, 1) is taken multiplied by |X|, which keeps the direction and
// doesn't overflow on tiny X.
func (h Hyperplane) SpanningVector() (Vector, error) {
	var spanningX, spanningY float64
	switch {
	case h.Normal.X != 0:
		spanningY = math.Abs(h.Normal.X)
		spanningX = -h.Normal.Y
		if math.Signbit(h.Normal.X) {
			spanningX = h.Normal.Y
		}
	case h.Normal.Y != 0:
		spanningX = 1
		spanningY = -h.Normal.X / h.Normal.Y
	default:
		return Vector{}, ErrDegenerateDirection
	}
	spanning, err := Vec(spanningX, spanningY).Normalized()
	if err != nil {
		return Vector{}, err
	}
	if !isFinite(spanning.X) || !isFinite(spanning.Y) {
		return Vector{}, ErrDegenerateDirection
	}
	return spanning, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DisplacementAlongNormal returns the spanning direction scaled by magnitude*|normal|,
// measured from the origin where the base spanning line passes
func (h Hyperplane) DisplacementAlongNormal(magnitude float64) (Vector, error) {
	spanning, err := h.SpanningVector()
	if err != nil {
		return Vector{}, err
	}
	base := Vec(0, 0)
	return base.Add(spanning.Scale(magnitude * h.Normal.Norm())), nil
}

// Segment returns ends of the chord c*spanning, c in [-halfLength, halfLength],
// with both ends shifted by translate*normal
func (h Hyperplane) Segment(halfLength, translate float64) (Vector, Vector, error) {
	spanning, err := h.SpanningVector()
	if err != nil {
		return Vector{}, Vector{}, err
	}
	shift := Vec(h.Normal.X, h.Normal.Y).Scale(translate)
	from := spanning.Scale(halfLength).Add(shift)
	to := spanning.Scale(-halfLength).Add(shift)
	return from, to, nil
}

// MarginSegments returns chords of the lines <x, normal> = +1 and <x, normal> = -1
func (h Hyperplane) MarginSegments(halfLength float64) ([2]Vector, [2]Vector, error) {
	var plusOne, minusOne [2]Vector
	sqNorm := InnerProduct(h.Normal, h.Normal)
	if sqNorm == 0 {
		return plusOne, minusOne, ErrDegenerateDirection
	}
	var err error
	plusOne[0], plusOne[1], err = h.Segment(halfLength, 1/sqNorm)
	if err != nil {
		return plusOne, minusOne, err
	}
	minusOne[0], minusOne[1], err = h.Segment(halfLength, -1/sqNorm)
	return plusOne, minusOne, err
}

// MarginWidth returns the distance between the hyperplane through the origin and the +1 line
func (h Hyperplane) MarginWidth() (float64, error) {
	norm := h.Normal.Norm()
	if norm == 0 {
		return 0, ErrDegenerateDirection
	}
	return 1 / norm, nil
}

// XY returns coordinates of the normal, so the hyperplane can be dotted with points
func (h Hyperplane) XY() (float64, float64) {
	return h.Normal.X, h.Normal.Y
}

// Angle returns angle between the normal and the x axis
func (h Hyperplane) Angle() float64 {
	return math.Atan2(h.Normal.Y, h.Normal.X)
}

// Contains checks if the point lies on the hyperplane
func (h Hyperplane) Contains(p Vector) bool {
	return cm.AlmostEqual(InnerProduct(p, h.Normal), h.Offset)
}

func (h Hyperplane) String() string {
	return fmt.Sprintf("<(%v, %v), x> = %v", h.Normal.X, h.Normal.Y, h.Offset)
}
