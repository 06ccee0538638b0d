package main

import (
	"math/rand"

	"github.com/gasparian/hyperplane-geometry-go/classifier"
	"github.com/gasparian/hyperplane-geometry-go/dual"
	geo "github.com/gasparian/hyperplane-geometry-go/geometry"
	"github.com/gasparian/hyperplane-geometry-go/sampler"
)

// Report holds everything a renderer needs to draw one scene
type Report struct {
	Truth           geo.Hyperplane
	Dual            geo.Hyperplane
	Points          []geo.Vector
	Accuracy        float64
	MarginWidth     float64
	Probe           geo.Vector
	ProbeProjection geo.Vector
	ProbeOffset     float64
}

func randomNormal(rng *rand.Rand, length float64) (geo.Vector, error) {
	for {
		n := geo.Vec(rng.Float64()*2-1, rng.Float64()*2-1)
		if n.IsZero() {
			continue
		}
		unit, err := n.Normalized()
		if err != nil {
			return geo.Vector{}, err
		}
		return unit.Scale(length), nil
	}
}

// Run samples points around a random hyperplane and rebuilds it from random dual weights
func Run(conf Config, rng *rand.Rand, progress func()) (Report, error) {
	normal, err := randomNormal(rng, conf.NormalLength)
	if err != nil {
		return Report{}, err
	}
	truth, err := geo.FromNormal(normal, 0)
	if err != nil {
		return Report{}, err
	}

	gen := sampler.NewGenerator(rng, sampler.Config{MaxAttempts: conf.MaxAttempts})
	gen.Progress = progress
	points, err := gen.Generate(truth, conf.NumPoints, sampler.Centered(conf.Width, conf.Height), conf.MinMargin)
	if err != nil {
		return Report{}, err
	}

	built, err := dual.BuildFromWeightedPoints(points, dual.RandomWeights(rng, len(points)), conf.NormalLength)
	if err != nil {
		return Report{}, err
	}
	report := Report{
		Truth:  truth,
		Dual:   built,
		Points: points,
	}
	report.Accuracy, err = classifier.Accuracy(points, built)
	if err != nil {
		return Report{}, err
	}
	report.MarginWidth, err = built.MarginWidth()
	if err != nil {
		return Report{}, err
	}
	report.Probe = points[0]
	report.ProbeProjection, err = geo.ProjectOntoNormal(points[0], built)
	if err != nil {
		return Report{}, err
	}
	report.ProbeOffset = report.Probe.DistanceTo(report.ProbeProjection)
	return report, nil
}
