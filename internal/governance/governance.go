package governance

import (
	"math"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region types

// Metrics is recomputed from scratch on every call and never stored.
type Metrics struct {
	OnBrand       int
	OffBrand      int
	Recent        int
	VelocityScore float64 // 0..5, one decimal
	TrustScore    int     // 0..100
}

// Config holds the scoring window and blend weights.
type Config struct {
	Window           time.Duration // recency window for signal counting
	CadenceTarget    float64       // signals/day that saturates cadence at 1
	ConfidenceWeight float64       // velocity blend: confidence share
	CadenceWeight    float64       // velocity blend: cadence share
	TrustConfWeight  float64       // trust blend: confidence share
	TrustBrandWeight float64       // trust blend: on-brand-ratio share
}

// DefaultConfig returns the standard 14-day window and blend weights.
func DefaultConfig() Config {
	return Config{
		Window:           14 * 24 * time.Hour,
		CadenceTarget:    5,
		ConfidenceWeight: 0.6,
		CadenceWeight:    0.4,
		TrustConfWeight:  0.5,
		TrustBrandWeight: 0.5,
	}
}

// #endregion types

// #region score

// Score derives velocity and trust metrics from the recent signal window and
// the engine's current primary archetype. Pure function, no I/O.
//
// Signals without a timestamp are ignored; signals without an archetype hint
// count toward neither on-brand nor off-brand but still count toward cadence.
func Score(sigs []signals.Signal, primaryDesignation string, confidence float64, now time.Time, config Config) Metrics {
	var onBrand, offBrand, total int
	for _, s := range sigs {
		if s.Timestamp.IsZero() || now.Sub(s.Timestamp) > config.Window {
			continue
		}
		total++
		switch {
		case s.Data.ArchetypeHint == "":
		case s.Data.ArchetypeHint == primaryDesignation:
			onBrand++
		default:
			offBrand++
		}
	}

	windowDays := config.Window.Hours() / 24
	signalsPerDay := float64(total) / windowDays
	cadence := math.Min(1, signalsPerDay/config.CadenceTarget)

	velocity := roundTo1((confidence*config.ConfidenceWeight + cadence*config.CadenceWeight) * 5)

	hinted := onBrand + offBrand
	if hinted < 1 {
		hinted = 1
	}
	onBrandRatio := float64(onBrand) / float64(hinted)
	trust := int(math.Round((confidence*config.TrustConfWeight + onBrandRatio*config.TrustBrandWeight) * 100))

	return Metrics{
		OnBrand:       onBrand,
		OffBrand:      offBrand,
		Recent:        total,
		VelocityScore: velocity,
		TrustScore:    trust,
	}
}

// roundTo1 rounds to one decimal place.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// #endregion score
