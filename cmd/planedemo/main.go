package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	cm "github.com/gasparian/hyperplane-geometry-go/common"
	guuid "github.com/google/uuid"
)

var configPath = flag.String("config", os.Getenv("PLANEDEMO_CONFIG"), "path to the json config")

func main() {
	flag.Parse()
	logger := cm.GetNewLogger()

	conf, err := LoadConfig(*configPath)
	if err != nil {
		logger.Err.Fatal(err)
	}
	if conf.Seed == 0 {
		conf.Seed = time.Now().UnixNano()
	}
	runID := guuid.NewString()
	logger.Info.Printf("Run %v: %+v", runID, conf)

	bar := pb.StartNew(conf.NumPoints)
	report, err := Run(conf, rand.New(rand.NewSource(conf.Seed)), func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		logger.Err.Fatal(err)
	}

	logger.Info.Printf("Run %v: generating hyperplane %v", runID, report.Truth)
	logger.Info.Printf("Run %v: dual hyperplane %v", runID, report.Dual)
	logger.Info.Printf("Run %v: accuracy %.2f, margin width %.4f", runID, report.Accuracy, report.MarginWidth)
	logger.Info.Printf("Run %v: first point %v projects to %v (%.2f away)", runID, report.Probe, report.ProbeProjection, report.ProbeOffset)
	if report.Accuracy < 1.0 {
		logger.Warn.Printf("Run %v: random weights didn't separate the sample", runID)
	}
}
