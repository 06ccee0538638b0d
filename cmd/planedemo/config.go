package main

import (
	cm "github.com/gasparian/hyperplane-geometry-go/common"
	"github.com/sauerbraten/jsonfile"
)

// Config holds the demo scene parameters
type Config struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	NumPoints    int     `json:"numPoints"`
	MinMargin    float64 `json:"minMargin"`
	NormalLength float64 `json:"normalLength"`
	MaxAttempts  int     `json:"maxAttempts"`
	Seed         int64   `json:"seed"`
}

// DefaultConfig mirrors the primal-margin page: 800x600 canvas, 40 points
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		NumPoints:    40,
		MinMargin:    60,
		NormalLength: 100,
	}
}

// LoadConfig reads optional json file (with // comments) and then applies env overrides
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path != "" {
		err := jsonfile.ParseFile(path, &conf)
		if err != nil {
			return Config{}, err
		}
	}
	conf.Width = cm.GetEnvFloat("WIDTH", conf.Width)
	conf.Height = cm.GetEnvFloat("HEIGHT", conf.Height)
	conf.NumPoints = cm.GetEnvInt("NUM_POINTS", conf.NumPoints)
	conf.MinMargin = cm.GetEnvFloat("MIN_MARGIN", conf.MinMargin)
	conf.NormalLength = cm.GetEnvFloat("NORMAL_LENGTH", conf.NormalLength)
	conf.MaxAttempts = cm.GetEnvInt("MAX_ATTEMPTS", conf.MaxAttempts)
	conf.Seed = int64(cm.GetEnvInt("SEED", int(conf.Seed)))
	return conf, nil
}
