package signals

import (
	"context"
	"time"
)

// #region signal-type

// Type enumerates signal kinds.
type Type string

const (
	TypeChoice Type = "choice"
	TypeLikert Type = "likert"
	TypePass   Type = "pass"
)

// Polarity marks which role an option played in a ranking.
type Polarity string

const (
	PolarityBest    Polarity = "best"
	PolarityWorst   Polarity = "worst"
	PolarityNeutral Polarity = "neutral"
)

// #endregion signal-type

// #region weights

// Signal weights. A ranked best/worst pair carries more evidence than a
// single choice, hence the multiplier over the unit weight.
const (
	UnitWeight = 1.0
	RankWeight = 1.6
)

// #endregion weights

// #region signal

// Data carries the per-signal payload. Ranking signals reference one option;
// pass signals reference the whole card.
type Data struct {
	Prompt        string   `json:"prompt,omitempty"`
	ArchetypeHint string   `json:"archetypeHint,omitempty"`
	Topic         string   `json:"topic,omitempty"`
	OptionID      string   `json:"optionId,omitempty"`
	SetID         string   `json:"setId,omitempty"`
	Polarity      Polarity `json:"polarity,omitempty"`
	Score         int      `json:"score,omitempty"`
	Neutral       bool     `json:"neutral,omitempty"`
	OptionIDs     []string `json:"optionIds,omitempty"`
	Topics        []string `json:"topics,omitempty"`
}

// Signal is one atomic preference datum. Signals are append-only and never
// mutated once submitted.
type Signal struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Weight    float64   `json:"weight"`
	Data      Data      `json:"data"`
}

// #endregion signal

// #region emitter

// Emitter abstracts signal submission so the recorder can be tested without
// a genome engine or database behind it.
type Emitter interface {
	Submit(ctx context.Context, profileID string, sig Signal) error
}

// #endregion emitter
