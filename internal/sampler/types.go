package sampler

import "github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"

// #region card

// Card is a set of exactly 4 mutually exclusive options presented together.
// Ids are pairwise distinct; topics are pairwise distinct whenever the pool
// offered enough unused topics at draw time.
type Card struct {
	ID      string
	Options []pool.Option
}

// OptionByID resolves one of the card's options, or false when absent.
func (c Card) OptionByID(id string) (pool.Option, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return pool.Option{}, false
}

// OptionIDs returns the card's option ids in presentation order.
func (c Card) OptionIDs() []string {
	ids := make([]string, len(c.Options))
	for i, o := range c.Options {
		ids[i] = o.ID
	}
	return ids
}

// Topics returns the card's distinct topics in presentation order.
func (c Card) Topics() []string {
	topics := make([]string, 0, len(c.Options))
	seen := make(map[string]struct{}, len(c.Options))
	for _, o := range c.Options {
		if _, dup := seen[o.Topic]; dup {
			continue
		}
		seen[o.Topic] = struct{}{}
		topics = append(topics, o.Topic)
	}
	return topics
}

// #endregion card

// #region session

// Session tracks what one continuous training session has already shown.
// It is an explicit value threaded through the sampler by its caller; it is
// never persisted and resets on profile switch or restart.
type Session struct {
	AskedOptionIDs map[string]struct{}
	AskedTopics    map[string]struct{}
}

// NewSession returns an empty session.
func NewSession() Session {
	return Session{
		AskedOptionIDs: make(map[string]struct{}),
		AskedTopics:    make(map[string]struct{}),
	}
}

// Clone returns an independent copy of the session.
func (s Session) Clone() Session {
	next := Session{
		AskedOptionIDs: make(map[string]struct{}, len(s.AskedOptionIDs)),
		AskedTopics:    make(map[string]struct{}, len(s.AskedTopics)),
	}
	for id := range s.AskedOptionIDs {
		next.AskedOptionIDs[id] = struct{}{}
	}
	for t := range s.AskedTopics {
		next.AskedTopics[t] = struct{}{}
	}
	return next
}

// WithResolved returns a copy of the session with every option and topic of
// the card marked seen. All 4 options are marked, not only the chosen ones,
// so unselected siblings do not resurface immediately.
func (s Session) WithResolved(card Card) Session {
	next := s.Clone()
	for _, o := range card.Options {
		next.AskedOptionIDs[o.ID] = struct{}{}
		next.AskedTopics[o.Topic] = struct{}{}
	}
	return next
}

// #endregion session

// #region config

// Config holds sampler tuning knobs.
type Config struct {
	OptionsPerCard int
}

// DefaultConfig returns the standard 4-option card shape.
func DefaultConfig() Config {
	return Config{OptionsPerCard: 4}
}

// #endregion config
