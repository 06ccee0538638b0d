package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gasparian/hyperplane-geometry-go/classifier"
	geo "github.com/gasparian/hyperplane-geometry-go/geometry"
)

// Centered returns width x height rectangle with the origin in the middle
func Centered(width, height float64) Rectangle {
	return Rectangle{
		MinX: -width / 2,
		MinY: -height / 2,
		MaxX: width / 2,
		MaxY: height / 2,
	}
}

// Width of the rectangle
func (r Rectangle) Width() float64 {
	return r.MaxX - r.MinX
}

// Height of the rectangle
func (r Rectangle) Height() float64 {
	return r.MaxY - r.MinY
}

// Validate checks that the rectangle has a positive area
func (r Rectangle) Validate() error {
	if !(r.MinX < r.MaxX) || !(r.MinY < r.MaxY) {
		return ErrInvalidBounds
	}
	if math.IsInf(r.Width(), 0) || math.IsInf(r.Height(), 0) {
		return ErrInvalidBounds
	}
	return nil
}

// NewGenerator creates sampler on top of the given random source.
// Nil rng falls back to the time seeded one.
func NewGenerator(rng *rand.Rand, config Config) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		Config: config,
		rng:    rng,
	}
}

func (g *Generator) uniform(r Rectangle) geo.Vector {
	return geo.Vec(
		r.MinX+g.rng.Float64()*r.Width(),
		r.MinY+g.rng.Float64()*r.Height(),
	)
}

// Generate draws count points inside bounds rejecting ones closer than minMargin
// to the hyperplane through the origin; every point is labeled by the hyperplane
func (g *Generator) Generate(h geo.Hyperplane, count int, bounds Rectangle, minMargin float64) ([]geo.Vector, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if !(minMargin >= 0) {
		return nil, ErrNegativeMargin
	}
	unitNormal, err := h.UnitNormal()
	if err != nil {
		return nil, err
	}
	capacity := count
	if capacity > maxPrealloc {
		capacity = maxPrealloc
	}
	points := make([]geo.Vector, 0, capacity)
	for i := 0; i < count; i++ {
		accepted := false
		for attempt := 0; attempt < g.Config.MaxAttempts; attempt++ {
			p := g.uniform(bounds)
			if math.Abs(geo.InnerProduct(p, unitNormal)) < minMargin {
				continue
			}
			points = append(points, classifier.Label(p, h))
			accepted = true
			break
		}
		if !accepted {
			return nil, fmt.Errorf("point %v of %v, %v attempts with margin %v: %w",
				i, count, g.Config.MaxAttempts, minMargin, ErrSamplingExhausted)
		}
		if g.Progress != nil {
			g.Progress()
		}
	}
	return points, nil
}
