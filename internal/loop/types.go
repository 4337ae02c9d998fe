package loop

import (
	"context"
	"errors"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/genome"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region errors

var (
	// ErrBusy is returned while a previous resolution round-trip is in
	// flight; callers should disable controls rather than retry.
	ErrBusy = errors.New("resolution in flight")

	// ErrNoCard is returned when the queue is empty. Not a failure: the
	// pool could not fill another card right now.
	ErrNoCard = errors.New("no card available")
)

// #endregion errors

// #region engine

// Engine is the subset of the external genome engine the loop consumes.
// Satisfied by genome.Client; standalone mode wires a local adapter over
// the signal log instead.
type Engine interface {
	Genome(ctx context.Context, profileID string) (genome.Snapshot, error)
	Signals(ctx context.Context, profileID string, limit int) ([]signals.Signal, error)
}

// #endregion engine

// #region config

// Config holds loop tuning knobs.
type Config struct {
	ProfileID    string
	SignalWindow int // how many recent signals to fetch for scoring
	QueueSize    int // cards kept ready ahead of the user
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(profileID string) Config {
	return Config{
		ProfileID:    profileID,
		SignalWindow: 100,
		QueueSize:    2,
	}
}

// #endregion config
