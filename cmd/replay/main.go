package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/catalog"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to a recorded session fixture (JSON)")
	catalogPath := flag.String("catalog", "", "optional catalog override (YAML)")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture session.json [--catalog catalog.yaml]")
		os.Exit(2)
	}

	fx, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	entries := catalog.Default()
	if *catalogPath != "" {
		entries, err = catalog.LoadFile(*catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	summary, err := replay.Run(entries, fx, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, step := range summary.Steps {
		fmt.Printf("%3d  %-5s  %d signal(s)  topics: %s\n",
			i+1, step.Action, step.Emitted, strings.Join(step.Topics, ", "))
	}
	fmt.Printf("\n%d picks replayed, %d signals emitted\n", len(summary.Steps), len(summary.Signals))
	fmt.Printf("governance vs %s (confidence %.2f): velocity=%.1f/5 trust=%d/100 (on-brand %d, off-brand %d)\n",
		fx.Primary, fx.Confidence,
		summary.Metrics.VelocityScore, summary.Metrics.TrustScore,
		summary.Metrics.OnBrand, summary.Metrics.OffBrand)
}

// #endregion main
