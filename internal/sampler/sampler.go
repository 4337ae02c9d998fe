package sampler

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
)

// #region sampler

// Sampler draws cards of mutually exclusive options from a pool, biasing
// toward topics the session has not asked about yet. The random source is
// injectable so tests can assert exact card contents.
type Sampler struct {
	rng    *rand.Rand
	config Config
}

// NewSampler creates a Sampler. rng may be nil (time-seeded source).
func NewSampler(rng *rand.Rand, config Config) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if config.OptionsPerCard <= 0 {
		config.OptionsPerCard = DefaultConfig().OptionsPerCard
	}
	return &Sampler{rng: rng, config: config}
}

// #endregion sampler

// #region build-cards

// BuildCards draws up to cardsToBuild cards from the pool.
//
// Options already asked this session are filtered out first; once the unseen
// pool is too small to fill a card, the full pool becomes eligible again for
// this draw (recycling), though the session's topic bias is still honored.
// Returns between 0 and cardsToBuild cards; a pool smaller than the card
// size yields none.
func (s *Sampler) BuildCards(options []pool.Option, session Session, cardsToBuild int) []Card {
	per := s.config.OptionsPerCard

	available := make([]pool.Option, 0, len(options))
	for _, o := range options {
		if _, asked := session.AskedOptionIDs[o.ID]; !asked {
			available = append(available, o)
		}
	}
	if len(available) < per {
		available = append(available[:0:0], options...)
	}

	usedTopics := make(map[string]struct{}, len(session.AskedTopics))
	for t := range session.AskedTopics {
		usedTopics[t] = struct{}{}
	}

	remaining := available
	cards := make([]Card, 0, cardsToBuild)

	for len(cards) < cardsToBuild && len(remaining) >= per {
		s.rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})

		// First pass: greedy topic-distinct pick over the permutation.
		picked := make([]pool.Option, 0, per)
		pickedIdx := make(map[int]struct{}, per)
		for i, o := range remaining {
			if len(picked) == per {
				break
			}
			if _, used := usedTopics[o.Topic]; used {
				continue
			}
			usedTopics[o.Topic] = struct{}{}
			picked = append(picked, o)
			pickedIdx[i] = struct{}{}
		}

		// Second pass: not enough distinct topics left; complete the card
		// in permutation order, accepting repeats.
		if len(picked) < per {
			for i, o := range remaining {
				if len(picked) == per {
					break
				}
				if _, already := pickedIdx[i]; already {
					continue
				}
				picked = append(picked, o)
				pickedIdx[i] = struct{}{}
			}
		}

		next := remaining[:0:0]
		for i, o := range remaining {
			if _, taken := pickedIdx[i]; !taken {
				next = append(next, o)
			}
		}
		remaining = next

		cards = append(cards, Card{ID: cardID(picked), Options: picked})
	}

	return cards
}

// cardID joins the picked ids with a random suffix so ids stay unique even
// when the same 4 options recur across a recycling cycle.
func cardID(picked []pool.Option) string {
	ids := make([]string, len(picked))
	for i, o := range picked {
		ids[i] = o.ID
	}
	return strings.Join(ids, "-") + "-" + uuid.NewString()[:8]
}

// #endregion build-cards
