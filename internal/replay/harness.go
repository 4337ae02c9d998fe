package replay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/catalog"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/governance"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/sampler"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region types

// StepResult traces one replayed pick.
type StepResult struct {
	CardID    string
	OptionIDs []string
	Topics    []string
	Action    string
	Emitted   int
}

// Summary is the outcome of a full replay run.
type Summary struct {
	Steps   []StepResult
	Signals []signals.Signal
	Metrics governance.Metrics
}

// #endregion types

// #region collector

// collector is an in-memory signal sink for replay runs.
type collector struct {
	sigs []signals.Signal
}

func (c *collector) Submit(_ context.Context, _ string, sig signals.Signal) error {
	c.sigs = append(c.sigs, sig)
	return nil
}

// #endregion collector

// #region run

// Run replays a recorded pick sequence through the full pipeline (pool
// build, card draw, recorder, governance) entirely in memory. Given the
// same catalog and fixture the card contents, signals, and scores come out
// the same every run, which makes it the tuning harness for catalog edits
// and scorer constants. Card IDs carry a fresh suffix and are the one
// non-reproducible piece.
//
// Picks are timestamped one hour apart ending at now, so short sessions
// land inside the scoring window.
func Run(entries []catalog.Entry, fx Fixture, now time.Time) (Summary, error) {
	builder := pool.NewBuilder(entries, pool.DefaultBuilderConfig())
	options := builder.Build(fx.Keywords)

	smp := sampler.NewSampler(rand.New(rand.NewSource(fx.Seed)), sampler.DefaultConfig())
	session := sampler.NewSession()

	sink := &collector{}
	stepTime := now.Add(-time.Duration(len(fx.Picks)) * time.Hour)
	recorder := signals.NewRecorder(sink, func() time.Time { return stepTime })

	ctx := context.Background()
	summary := Summary{}

	for i, pick := range fx.Picks {
		stepTime = now.Add(-time.Duration(len(fx.Picks)-1-i) * time.Hour)

		cards := smp.BuildCards(options, session, 1)
		if len(cards) == 0 {
			break
		}
		card := cards[0]

		before := len(sink.sigs)
		switch pick.Action {
		case "rank":
			best := card.Options[pick.Best].ID
			worst := card.Options[pick.Worst].ID
			if _, err := recorder.RecordRanking(ctx, fx.Profile, card, best, worst); err != nil {
				return Summary{}, fmt.Errorf("replay pick %d: %w", i, err)
			}
		case "skip":
			if _, err := recorder.RecordSkip(ctx, fx.Profile, card); err != nil {
				return Summary{}, fmt.Errorf("replay pick %d: %w", i, err)
			}
		}

		session = session.WithResolved(card)
		summary.Steps = append(summary.Steps, StepResult{
			CardID:    card.ID,
			OptionIDs: card.OptionIDs(),
			Topics:    card.Topics(),
			Action:    pick.Action,
			Emitted:   len(sink.sigs) - before,
		})
	}

	summary.Signals = sink.sigs
	summary.Metrics = governance.Score(sink.sigs, fx.Primary, fx.Confidence, now, governance.DefaultConfig())
	return summary, nil
}

// #endregion run
