package main

import (
	"errors"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/gasparian/hyperplane-geometry-go/classifier"
	geo "github.com/gasparian/hyperplane-geometry-go/geometry"
	"github.com/gasparian/hyperplane-geometry-go/sampler"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestRun(t *testing.T) {
	conf := DefaultConfig()
	calls := 0
	report, err := Run(conf, rand.New(rand.NewSource(1)), func() { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Points) != conf.NumPoints || calls != conf.NumPoints {
		t.Fatal("Every point must be generated and reported")
	}
	if !scalar.EqualWithinAbs(report.Truth.Normal.Norm(), conf.NormalLength, 1e-7) {
		t.Fatal("Generating normal has the wrong length")
	}
	if !scalar.EqualWithinAbs(report.Dual.Normal.Norm(), conf.NormalLength, 1e-7) {
		t.Fatal("Dual normal has the wrong length")
	}
	for _, p := range report.Points {
		if p.Label != classifier.SideOf(p, report.Truth) {
			t.Fatal("Points must be labeled by the generating hyperplane")
		}
	}
	if report.Accuracy < 0 || report.Accuracy > 1 {
		t.Fatal("Accuracy must be a fraction")
	}
	if !scalar.EqualWithinAbs(report.MarginWidth, 1/conf.NormalLength, 1e-9) {
		t.Fatal("Wrong margin width")
	}
	if !scalar.EqualWithinAbs(report.ProbeOffset, report.Probe.Sub(report.ProbeProjection).Norm(), 1e-9) {
		t.Fatal("Wrong distance between the probe and its projection")
	}
	if report.Probe != report.Points[0] {
		t.Fatal("Probe must be the first point")
	}
	if !geo.Vec(report.ProbeProjection.X, report.ProbeProjection.Y).IsZero() {
		s, _ := report.Dual.SpanningVector()
		if !scalar.EqualWithinAbs(geo.InnerProduct(report.ProbeProjection, s), 0, 1e-7) {
			t.Fatal("Projection must be parallel to the normal")
		}
	}
}

func TestRunExhausted(t *testing.T) {
	conf := DefaultConfig()
	conf.MinMargin = 1e6
	conf.MaxAttempts = 10
	_, err := Run(conf, rand.New(rand.NewSource(1)), nil)
	if !errors.Is(err, sampler.ErrSamplingExhausted) {
		t.Fatal("Impossible margin must be reported")
	}
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "planedemo")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.json")
	data := []byte("{\n// smaller scene\n\"numPoints\": 10,\n\"minMargin\": 5\n}\n")
	if err = ioutil.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("NORMAL_LENGTH", "50")
	defer os.Unsetenv("NORMAL_LENGTH")

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.NumPoints != 10 || conf.MinMargin != 5 {
		t.Fatalf("File values must be applied: %+v", conf)
	}
	if conf.NormalLength != 50 {
		t.Fatal("Env values must override the file")
	}
	if conf.Width != 800 || conf.Height != 600 {
		t.Fatal("Defaults must be kept for missing keys")
	}
	if _, err = LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("Missing config file must be reported")
	}
}
