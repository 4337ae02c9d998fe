package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/governance"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signallog"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to taste_signals.db")
	profile := flag.String("profile", "default", "profile id")
	last := flag.Int("last", 20, "show N most recent signals")
	primary := flag.String("primary", "", "primary designation for governance metrics")
	confidence := flag.Float64("confidence", 0, "primary confidence (0..1) for governance metrics")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/taste_signals.db [--profile id] [--last N] [--primary D --confidence C] [--json]")
		os.Exit(2)
	}

	store, err := signallog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	recent, err := store.Recent(ctx, *profile, *last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	total, err := store.Count(ctx, *profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	metrics := governance.Score(recent, *primary, *confidence, time.Now(), governance.DefaultConfig())

	if *jsonOut {
		printJSON(recent, total, metrics)
		return
	}
	printTable(recent, total, metrics, *primary)
}

// #endregion main

// #region output

type report struct {
	Profile struct {
		Total   int                `json:"total"`
		Metrics governance.Metrics `json:"metrics"`
	} `json:"summary"`
	Signals []signals.Signal `json:"signals"`
}

func printJSON(recent []signals.Signal, total int, metrics governance.Metrics) {
	var r report
	r.Profile.Total = total
	r.Profile.Metrics = metrics
	r.Signals = recent

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}

func printTable(recent []signals.Signal, total int, metrics governance.Metrics, primary string) {
	fmt.Printf("%-26s %-7s %-6s %-22s %-5s %s\n", "WHEN", "TYPE", "POL", "TOPIC", "SCORE", "HINT")
	for _, s := range recent {
		topic := s.Data.Topic
		if s.Type == signals.TypePass {
			topic = fmt.Sprintf("(pass: %d options)", len(s.Data.OptionIDs))
		}
		fmt.Printf("%-26s %-7s %-6s %-22s %-5d %s\n",
			s.Timestamp.Format(time.RFC3339),
			s.Type,
			s.Data.Polarity,
			topic,
			s.Data.Score,
			s.Data.ArchetypeHint,
		)
	}
	fmt.Printf("\n%d signals total\n", total)
	if primary != "" {
		fmt.Printf("governance vs %s: velocity=%.1f/5 trust=%d/100 (on-brand %d, off-brand %d, %d recent)\n",
			primary, metrics.VelocityScore, metrics.TrustScore, metrics.OnBrand, metrics.OffBrand, metrics.Recent)
	}
}

// #endregion output
