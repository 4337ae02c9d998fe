package signals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/sampler"
)

// fakeEmitter collects submissions and can fail after N successes.
type fakeEmitter struct {
	emitted   []Signal
	failAfter int // -1 = never fail
}

func (f *fakeEmitter) Submit(_ context.Context, _ string, sig Signal) error {
	if f.failAfter >= 0 && len(f.emitted) >= f.failAfter {
		return errors.New("transport down")
	}
	f.emitted = append(f.emitted, sig)
	return nil
}

func testCard() sampler.Card {
	return sampler.Card{
		ID: "card-1",
		Options: []pool.Option{
			{ID: "a", Topic: "tone", Prompt: "pa", ArchetypeHint: "O-08"},
			{ID: "b", Topic: "pacing", Prompt: "pb"},
			{ID: "c", Topic: "format", Prompt: "pc", ArchetypeHint: "A-03"},
			{ID: "d", Topic: "humor", Prompt: "pd"},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func TestRecordRankingEmitsOppositePair(t *testing.T) {
	sink := &fakeEmitter{failAfter: -1}
	r := NewRecorder(sink, fixedNow)

	pair, err := r.RecordRanking(context.Background(), "p1", testCard(), "a", "c")
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}
	if len(pair) != 2 || len(sink.emitted) != 2 {
		t.Fatalf("expected exactly 2 signals, got %d returned / %d emitted", len(pair), len(sink.emitted))
	}

	best, worst := sink.emitted[0], sink.emitted[1]
	if best.Type != TypeLikert || worst.Type != TypeLikert {
		t.Fatalf("expected likert pair, got %s/%s", best.Type, worst.Type)
	}
	if best.Data.Score != 5 || best.Data.Polarity != PolarityBest {
		t.Fatalf("best signal wrong: score=%d polarity=%s", best.Data.Score, best.Data.Polarity)
	}
	if worst.Data.Score != 1 || worst.Data.Polarity != PolarityWorst {
		t.Fatalf("worst signal wrong: score=%d polarity=%s", worst.Data.Score, worst.Data.Polarity)
	}
	if best.Data.SetID != "card-1" || worst.Data.SetID != "card-1" {
		t.Fatal("both signals must carry the card id as setId")
	}
	if best.Weight != RankWeight || worst.Weight != RankWeight {
		t.Fatalf("both signals must carry RankWeight, got %v/%v", best.Weight, worst.Weight)
	}
	if best.Data.OptionID != "a" || best.Data.ArchetypeHint != "O-08" || best.Data.Topic != "tone" {
		t.Fatalf("best signal payload wrong: %+v", best.Data)
	}
	if worst.Data.OptionID != "c" || worst.Data.ArchetypeHint != "A-03" {
		t.Fatalf("worst signal payload wrong: %+v", worst.Data)
	}
	if best.ID == worst.ID {
		t.Fatal("signal ids must differ")
	}
}

func TestRecordRankingWorstFailureSurfaces(t *testing.T) {
	// The best signal lands, the worst submission fails: the error must
	// surface and only one signal be durable (documented non-atomicity).
	sink := &fakeEmitter{failAfter: 1}
	r := NewRecorder(sink, fixedNow)

	_, err := r.RecordRanking(context.Background(), "p1", testCard(), "a", "c")
	if err == nil {
		t.Fatal("expected error from failing worst submission")
	}
	if len(sink.emitted) != 1 {
		t.Fatalf("expected 1 durable signal, got %d", len(sink.emitted))
	}
	if sink.emitted[0].Data.Polarity != PolarityBest {
		t.Fatal("the durable signal should be the best pick")
	}
}

func TestRecordRankingRejectsBadPicks(t *testing.T) {
	r := NewRecorder(&fakeEmitter{failAfter: -1}, fixedNow)
	ctx := context.Background()

	if _, err := r.RecordRanking(ctx, "p1", testCard(), "a", "a"); err == nil {
		t.Fatal("expected error for best == worst")
	}
	if _, err := r.RecordRanking(ctx, "p1", testCard(), "nope", "a"); err == nil {
		t.Fatal("expected error for unknown best id")
	}
	if _, err := r.RecordRanking(ctx, "p1", testCard(), "a", "nope"); err == nil {
		t.Fatal("expected error for unknown worst id")
	}
}

func TestRecordSkipEmitsSingleNeutralPass(t *testing.T) {
	sink := &fakeEmitter{failAfter: -1}
	r := NewRecorder(sink, fixedNow)

	sig, err := r.RecordSkip(context.Background(), "p1", testCard())
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if len(sink.emitted) != 1 {
		t.Fatalf("expected exactly 1 signal, got %d", len(sink.emitted))
	}
	if sig.Type != TypePass || !sig.Data.Neutral {
		t.Fatalf("expected neutral pass, got type=%s neutral=%v", sig.Type, sig.Data.Neutral)
	}
	if sig.Weight != UnitWeight {
		t.Fatalf("pass signal must use unit weight, got %v", sig.Weight)
	}
	if len(sig.Data.OptionIDs) != 4 {
		t.Fatalf("pass signal must reference all 4 options, got %d", len(sig.Data.OptionIDs))
	}
	if len(sig.Data.Topics) != 4 {
		t.Fatalf("expected 4 distinct topics, got %d", len(sig.Data.Topics))
	}
	if sig.Data.SetID != "card-1" {
		t.Fatalf("expected setId card-1, got %q", sig.Data.SetID)
	}
}

func TestRecordSkipFailureSurfaces(t *testing.T) {
	sink := &fakeEmitter{failAfter: 0}
	r := NewRecorder(sink, fixedNow)

	if _, err := r.RecordSkip(context.Background(), "p1", testCard()); err == nil {
		t.Fatal("expected error from failing submission")
	}
	if len(sink.emitted) != 0 {
		t.Fatalf("expected no durable signals, got %d", len(sink.emitted))
	}
}
