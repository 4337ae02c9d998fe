package loop

import (
	"context"
	"log"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/genome"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/governance"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/sampler"
	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region controller

// Controller coordinates one training session: it holds the session sets,
// keeps a small card queue filled, and runs the resolve/skip round-trip in
// the required order (emit, refresh genome, refresh log, rebuild cards).
//
// The controller is single-threaded by design: driven by discrete user
// actions, guarded by one busy flag, no internal goroutines.
type Controller struct {
	engine   Engine
	recorder *signals.Recorder
	sampler  *sampler.Sampler
	builder  *pool.Builder
	govCfg   governance.Config
	config   Config

	busy     bool
	session  sampler.Session
	options  []pool.Option
	queue    []sampler.Card
	snapshot genome.Snapshot
	window   []signals.Signal
}

// NewController wires a controller from its collaborators.
func NewController(engine Engine, recorder *signals.Recorder, smp *sampler.Sampler, builder *pool.Builder, config Config) *Controller {
	if config.SignalWindow <= 0 {
		config.SignalWindow = DefaultConfig(config.ProfileID).SignalWindow
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultConfig(config.ProfileID).QueueSize
	}
	return &Controller{
		engine:   engine,
		recorder: recorder,
		sampler:  smp,
		builder:  builder,
		govCfg:   governance.DefaultConfig(),
		config:   config,
		session:  sampler.NewSession(),
	}
}

// #endregion controller

// #region accessors

// Busy reports whether a resolution round-trip is in flight.
func (c *Controller) Busy() bool { return c.busy }

// ProfileID returns the active profile.
func (c *Controller) ProfileID() string { return c.config.ProfileID }

// Snapshot returns the last fetched genome snapshot.
func (c *Controller) Snapshot() genome.Snapshot { return c.snapshot }

// CurrentCard returns the card under presentation, if any.
func (c *Controller) CurrentCard() (sampler.Card, bool) {
	if len(c.queue) == 0 {
		return sampler.Card{}, false
	}
	return c.queue[0], true
}

// Metrics computes governance metrics from the fetched window and snapshot.
func (c *Controller) Metrics(now time.Time) governance.Metrics {
	return governance.Score(
		c.window,
		c.snapshot.PrimaryDesignation(),
		c.snapshot.PrimaryConfidence(),
		now,
		c.govCfg,
	)
}

// #endregion accessors

// #region start

// Start performs the mount-time refresh and builds the initial card queue.
// Refresh failures are logged, not fatal: the loop degrades to whatever is
// in memory (an empty snapshot yields a static-only pool).
func (c *Controller) Start(ctx context.Context) {
	c.refresh(ctx)
	c.rebuild()
}

// SwitchProfile resets the session for a new profile and refreshes.
func (c *Controller) SwitchProfile(ctx context.Context, profileID string) {
	c.config.ProfileID = profileID
	c.session = sampler.NewSession()
	c.queue = nil
	c.snapshot = genome.Snapshot{}
	c.window = nil
	c.Start(ctx)
}

// #endregion start

// #region resolve

// Resolve submits a best/worst ranking for the current card. On emission
// failure the card stays current and the session sets are untouched, so the
// identical card can be resubmitted. On success the whole card is marked
// seen, state is refreshed, and the queue is rebuilt.
func (c *Controller) Resolve(ctx context.Context, bestID, worstID string) error {
	card, err := c.begin()
	if err != nil {
		return err
	}
	defer func() { c.busy = false }()

	if _, err := c.recorder.RecordRanking(ctx, c.config.ProfileID, card, bestID, worstID); err != nil {
		return err
	}
	c.settle(ctx, card)
	return nil
}

// Skip submits the neutral pass signal for the current card. Same session
// and failure semantics as Resolve.
func (c *Controller) Skip(ctx context.Context) error {
	card, err := c.begin()
	if err != nil {
		return err
	}
	defer func() { c.busy = false }()

	if _, err := c.recorder.RecordSkip(ctx, c.config.ProfileID, card); err != nil {
		return err
	}
	c.settle(ctx, card)
	return nil
}

// begin takes the busy lock and returns the card under resolution.
func (c *Controller) begin() (sampler.Card, error) {
	if c.busy {
		return sampler.Card{}, ErrBusy
	}
	card, ok := c.CurrentCard()
	if !ok {
		return sampler.Card{}, ErrNoCard
	}
	c.busy = true
	return card, nil
}

// settle runs the post-emission sequence: mark the card seen, refresh
// genome then signal log, rebuild the queue from the updated session.
func (c *Controller) settle(ctx context.Context, card sampler.Card) {
	c.session = c.session.WithResolved(card)
	c.refresh(ctx)
	c.rebuild()
}

// #endregion resolve

// #region refresh

// refresh fetches the genome snapshot and then the signal window, in that
// order. Failures leave the previous in-memory values in place.
func (c *Controller) refresh(ctx context.Context) {
	snap, err := c.engine.Genome(ctx, c.config.ProfileID)
	if err != nil {
		log.Printf("[LOOP] genome refresh failed, keeping stale snapshot: %v", err)
	} else {
		c.snapshot = snap
	}

	window, err := c.engine.Signals(ctx, c.config.ProfileID, c.config.SignalWindow)
	if err != nil {
		log.Printf("[LOOP] signal refresh failed, keeping stale window: %v", err)
	} else {
		c.window = window
	}
}

// rebuild reconstructs the option pool from the current keywords and draws
// a fresh queue. An empty queue means the pool is exhausted for now.
func (c *Controller) rebuild() {
	c.options = c.builder.Build(c.snapshot.KeywordAggregates())
	c.queue = c.sampler.BuildCards(c.options, c.session, c.config.QueueSize)
	if len(c.queue) == 0 {
		log.Printf("[LOOP] pool exhausted: no cards available for profile %s", c.config.ProfileID)
	}
}

// #endregion refresh
