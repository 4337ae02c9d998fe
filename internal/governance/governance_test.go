package governance

import (
	"math"
	"testing"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func hinted(hint string, age time.Duration) signals.Signal {
	return signals.Signal{
		Type:      signals.TypeLikert,
		Timestamp: testNow.Add(-age),
		Weight:    signals.RankWeight,
		Data:      signals.Data{ArchetypeHint: hint},
	}
}

func TestScoreSevenSignalWindow(t *testing.T) {
	// 7 signals inside 14 days, 5 on-brand and 2 off, confidence 0.8:
	// cadence = min(1, (7/14)/5) = 0.1
	// velocity = round((0.8*0.6 + 0.1*0.4)*5, 1) = 2.6
	// trust    = round((0.8*0.5 + (5/7)*0.5)*100) = 76
	var sigs []signals.Signal
	for i := 0; i < 5; i++ {
		sigs = append(sigs, hinted("R-10", time.Duration(i+1)*24*time.Hour))
	}
	for i := 0; i < 2; i++ {
		sigs = append(sigs, hinted("A-03", time.Duration(i+1)*24*time.Hour))
	}

	m := Score(sigs, "R-10", 0.8, testNow, DefaultConfig())
	if m.OnBrand != 5 || m.OffBrand != 2 || m.Recent != 7 {
		t.Fatalf("counts wrong: %+v", m)
	}
	if m.VelocityScore != 2.6 {
		t.Fatalf("velocity = %v, want 2.6", m.VelocityScore)
	}
	if m.TrustScore != 76 {
		t.Fatalf("trust = %d, want 76", m.TrustScore)
	}
}

func TestScoreEmptyWindow(t *testing.T) {
	// No recent signals, confidence 0.5:
	// velocity = round(0.5*0.6*5, 1) = 1.5; trust = round(0.5*0.5*100) = 25
	m := Score(nil, "R-10", 0.5, testNow, DefaultConfig())
	if m.Recent != 0 || m.OnBrand != 0 || m.OffBrand != 0 {
		t.Fatalf("counts wrong: %+v", m)
	}
	if m.VelocityScore != 1.5 {
		t.Fatalf("velocity = %v, want 1.5", m.VelocityScore)
	}
	if m.TrustScore != 25 {
		t.Fatalf("trust = %d, want 25", m.TrustScore)
	}
}

func TestScoreZeroSignalBaseline(t *testing.T) {
	for _, c := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
		m := Score(nil, "R-10", c, testNow, DefaultConfig())
		wantTrust := int(math.Round(c * 50))
		if m.TrustScore != wantTrust {
			t.Fatalf("confidence %v: trust = %d, want %d", c, m.TrustScore, wantTrust)
		}
		wantVelocity := math.Round(c*3*10) / 10
		if m.VelocityScore != wantVelocity {
			t.Fatalf("confidence %v: velocity = %v, want %v", c, m.VelocityScore, wantVelocity)
		}
	}
}

func TestScoreBounded(t *testing.T) {
	// Saturate cadence with 100 on-brand signals at full confidence.
	var sigs []signals.Signal
	for i := 0; i < 100; i++ {
		sigs = append(sigs, hinted("R-10", time.Hour))
	}
	m := Score(sigs, "R-10", 1.0, testNow, DefaultConfig())
	if m.VelocityScore < 0 || m.VelocityScore > 5 {
		t.Fatalf("velocity out of range: %v", m.VelocityScore)
	}
	if m.VelocityScore != 5 {
		t.Fatalf("saturated velocity should hit 5, got %v", m.VelocityScore)
	}
	if m.TrustScore < 0 || m.TrustScore > 100 {
		t.Fatalf("trust out of range: %d", m.TrustScore)
	}
	if m.TrustScore != 100 {
		t.Fatalf("saturated trust should hit 100, got %d", m.TrustScore)
	}

	m = Score(nil, "R-10", 0, testNow, DefaultConfig())
	if m.VelocityScore != 0 || m.TrustScore != 0 {
		t.Fatalf("floor should be 0/0, got %v/%d", m.VelocityScore, m.TrustScore)
	}
}

func TestScoreIgnoresStaleAndUntimestamped(t *testing.T) {
	sigs := []signals.Signal{
		hinted("R-10", 15*24*time.Hour),             // outside window
		{Data: signals.Data{ArchetypeHint: "R-10"}}, // zero timestamp
		hinted("R-10", time.Hour),
	}
	m := Score(sigs, "R-10", 0.5, testNow, DefaultConfig())
	if m.Recent != 1 || m.OnBrand != 1 {
		t.Fatalf("expected 1 recent on-brand signal, got %+v", m)
	}
}

func TestScoreHintlessCountsTowardCadenceOnly(t *testing.T) {
	sigs := []signals.Signal{
		hinted("", time.Hour),
		hinted("", 2*time.Hour),
		hinted("R-10", 3*time.Hour),
	}
	m := Score(sigs, "R-10", 0.5, testNow, DefaultConfig())
	if m.Recent != 3 {
		t.Fatalf("recent = %d, want 3", m.Recent)
	}
	if m.OnBrand != 1 || m.OffBrand != 0 {
		t.Fatalf("hintless signals leaked into brand counts: %+v", m)
	}
	// Ratio over hinted signals only: 1/1 → trust = round((0.25+0.5)*100) = 75.
	if m.TrustScore != 75 {
		t.Fatalf("trust = %d, want 75", m.TrustScore)
	}
}
