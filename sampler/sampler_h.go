package sampler

import (
	"errors"
	"math/rand"
)

// DefaultMaxAttempts bounds the number of rejected draws per accepted point
const DefaultMaxAttempts = 10000

// maxPrealloc bounds the capacity reserved up front for the sample
const maxPrealloc = 1024

var (
	// ErrSamplingExhausted is returned when no point far enough from the hyperplane was found
	ErrSamplingExhausted = errors.New("sampling attempts exhausted")
	// ErrInvalidBounds is returned for the empty or malformed sampling rectangle
	ErrInvalidBounds = errors.New("sampling bounds must have MinX < MaxX and MinY < MaxY")
	// ErrNegativeCount is returned when the requested number of points is negative
	ErrNegativeCount = errors.New("points count must not be negative")
	// ErrNegativeMargin is returned when the minimal margin is negative or NaN
	ErrNegativeMargin = errors.New("minimal margin must not be negative")
)

// Rectangle holds the axis aligned area points are drawn from
type Rectangle struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Config holds sampler settings
type Config struct {
	MaxAttempts int
}

// Generator draws labeled points around a hyperplane
type Generator struct {
	Config   Config
	Progress func()
	rng      *rand.Rand
}
