package signals

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/sampler"
)

// #region recorder

// Recorder converts resolved cards into signals and submits them through an
// Emitter. It performs no session bookkeeping; the caller updates the
// session only after a fully successful emission.
type Recorder struct {
	emitter Emitter
	now     func() time.Time
}

// NewRecorder creates a Recorder. now may be nil (wall clock).
func NewRecorder(emitter Emitter, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{emitter: emitter, now: now}
}

// #endregion recorder

// #region record-ranking

// RecordRanking emits the opposite-polarity pair for a ranked card: one
// likert signal with score 5 for the best pick and one with score 1 for the
// worst, both at RankWeight and sharing the card id as setId.
//
// The pair is not transactional: the best signal may already be durable when
// the worst submission fails. On any failure the error is returned and the
// caller must leave its session state untouched so the identical card can be
// resubmitted.
func (r *Recorder) RecordRanking(ctx context.Context, profileID string, card sampler.Card, bestID, worstID string) ([]Signal, error) {
	if bestID == worstID {
		return nil, fmt.Errorf("ranking: best and worst must differ (got %q twice)", bestID)
	}
	best, ok := card.OptionByID(bestID)
	if !ok {
		return nil, fmt.Errorf("ranking: best option %q not on card %s", bestID, card.ID)
	}
	worst, ok := card.OptionByID(worstID)
	if !ok {
		return nil, fmt.Errorf("ranking: worst option %q not on card %s", worstID, card.ID)
	}

	ts := r.now().UTC()
	pair := []Signal{
		r.rankSignal(card.ID, best, PolarityBest, 5, ts),
		r.rankSignal(card.ID, worst, PolarityWorst, 1, ts),
	}

	for _, sig := range pair {
		if err := r.emitter.Submit(ctx, profileID, sig); err != nil {
			return nil, fmt.Errorf("submit %s signal: %w", sig.Data.Polarity, err)
		}
	}
	return pair, nil
}

func (r *Recorder) rankSignal(setID string, opt pool.Option, polarity Polarity, score int, ts time.Time) Signal {
	return Signal{
		ID:        uuid.NewString(),
		Type:      TypeLikert,
		Timestamp: ts,
		Weight:    RankWeight,
		Data: Data{
			Prompt:        opt.Prompt,
			ArchetypeHint: opt.ArchetypeHint,
			Topic:         opt.Topic,
			OptionID:      opt.ID,
			SetID:         setID,
			Polarity:      polarity,
			Score:         score,
		},
	}
}

// #endregion record-ranking

// #region record-skip

// RecordSkip emits the single neutral pass signal for a card the user chose
// not to rank, referencing all of the card's option ids and topics. Weight
// stays at the unit default.
func (r *Recorder) RecordSkip(ctx context.Context, profileID string, card sampler.Card) (Signal, error) {
	sig := Signal{
		ID:        uuid.NewString(),
		Type:      TypePass,
		Timestamp: r.now().UTC(),
		Weight:    UnitWeight,
		Data: Data{
			Neutral:   true,
			SetID:     card.ID,
			OptionIDs: card.OptionIDs(),
			Topics:    card.Topics(),
		},
	}
	if err := r.emitter.Submit(ctx, profileID, sig); err != nil {
		return Signal{}, fmt.Errorf("submit pass signal: %w", err)
	}
	return sig, nil
}

// #endregion record-skip
