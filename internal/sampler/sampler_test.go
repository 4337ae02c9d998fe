package sampler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/pool"
)

func makePool(n int, topicsPer int) []pool.Option {
	options := make([]pool.Option, n)
	for i := range options {
		options[i] = pool.Option{
			ID:     fmt.Sprintf("opt-%d", i),
			Topic:  fmt.Sprintf("topic-%d", i%topicsPer),
			Prompt: fmt.Sprintf("prompt %d", i),
			Source: pool.SourceStatic,
		}
	}
	return options
}

func seeded(seed int64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(seed)), DefaultConfig())
}

func TestCardHasDistinctIDs(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cards := seeded(seed).BuildCards(makePool(12, 12), NewSession(), 3)
		for _, card := range cards {
			if len(card.Options) != 4 {
				t.Fatalf("card %s has %d options", card.ID, len(card.Options))
			}
			seen := make(map[string]struct{})
			for _, o := range card.Options {
				if _, dup := seen[o.ID]; dup {
					t.Fatalf("card %s repeats option %s", card.ID, o.ID)
				}
				seen[o.ID] = struct{}{}
			}
		}
	}
}

func TestCardTopicsDistinctWhenPoolAllows(t *testing.T) {
	// 12 options across 12 distinct topics: every card must be topic-distinct.
	for seed := int64(0); seed < 20; seed++ {
		cards := seeded(seed).BuildCards(makePool(12, 12), NewSession(), 3)
		for _, card := range cards {
			topics := make(map[string]struct{})
			for _, o := range card.Options {
				if _, dup := topics[o.Topic]; dup {
					t.Fatalf("seed %d: card %s repeats topic %s", seed, card.ID, o.Topic)
				}
				topics[o.Topic] = struct{}{}
			}
		}
	}
}

func TestCardCompletesWhenTopicsScarce(t *testing.T) {
	// 8 options but only 2 topics: cards must still fill to 4 options.
	cards := seeded(7).BuildCards(makePool(8, 2), NewSession(), 2)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	for _, card := range cards {
		if len(card.Options) != 4 {
			t.Fatalf("card %s has %d options, want 4", card.ID, len(card.Options))
		}
	}
}

func TestExactPoolYieldsThatCard(t *testing.T) {
	// Scenario: pool of exactly 4 options across 4 topics, empty session.
	options := makePool(4, 4)
	cards := seeded(3).BuildCards(options, NewSession(), 1)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	got := make(map[string]struct{})
	for _, o := range cards[0].Options {
		got[o.ID] = struct{}{}
	}
	for _, o := range options {
		if _, ok := got[o.ID]; !ok {
			t.Fatalf("card missing pool option %s", o.ID)
		}
	}
}

func TestSmallPoolYieldsNoCards(t *testing.T) {
	if cards := seeded(1).BuildCards(makePool(3, 3), NewSession(), 1); len(cards) != 0 {
		t.Fatalf("pool of 3 must yield no cards, got %d", len(cards))
	}
}

func TestNoImmediateRepeats(t *testing.T) {
	options := makePool(16, 16)
	s := seeded(5)
	session := NewSession()

	first := s.BuildCards(options, session, 1)
	if len(first) != 1 {
		t.Fatalf("expected a first card")
	}
	session = session.WithResolved(first[0])

	next := s.BuildCards(options, session, 1)
	if len(next) != 1 {
		t.Fatalf("expected a next card")
	}
	for _, o := range next[0].Options {
		if _, asked := session.AskedOptionIDs[o.ID]; asked {
			t.Fatalf("option %s resurfaced immediately", o.ID)
		}
	}
}

func TestRecyclingWhenUnseenPoolTooSmall(t *testing.T) {
	options := makePool(6, 6)
	session := NewSession()
	// Mark 4 of 6 asked: 2 unseen < 4 triggers the recycling fallback.
	for i := 0; i < 4; i++ {
		session.AskedOptionIDs[fmt.Sprintf("opt-%d", i)] = struct{}{}
		session.AskedTopics[fmt.Sprintf("topic-%d", i)] = struct{}{}
	}

	cards := seeded(9).BuildCards(options, session, 1)
	if len(cards) != 1 {
		t.Fatalf("recycling must still produce a card, got %d", len(cards))
	}
	if len(cards[0].Options) != 4 {
		t.Fatalf("recycled card has %d options", len(cards[0].Options))
	}
}

func TestCardsWithinOneCallDoNotOverlap(t *testing.T) {
	cards := seeded(11).BuildCards(makePool(12, 12), NewSession(), 3)
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards from 12 options, got %d", len(cards))
	}
	seen := make(map[string]struct{})
	for _, card := range cards {
		for _, o := range card.Options {
			if _, dup := seen[o.ID]; dup {
				t.Fatalf("option %s appears on two cards of one draw", o.ID)
			}
			seen[o.ID] = struct{}{}
		}
	}
}

func TestDeterministicGivenSeed(t *testing.T) {
	options := makePool(20, 20)
	a := seeded(42).BuildCards(options, NewSession(), 2)
	b := seeded(42).BuildCards(makePool(20, 20), NewSession(), 2)

	if len(a) != len(b) {
		t.Fatalf("card counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		for j := range a[i].Options {
			if a[i].Options[j].ID != b[i].Options[j].ID {
				t.Fatalf("card %d slot %d differs: %s vs %s",
					i, j, a[i].Options[j].ID, b[i].Options[j].ID)
			}
		}
	}
}

func TestCardIDsUniqueAcrossRecycle(t *testing.T) {
	options := makePool(4, 4)
	s := seeded(2)
	session := NewSession()

	first := s.BuildCards(options, session, 1)
	session = session.WithResolved(first[0])
	// All 4 asked: the same 4 options recycle into the next card.
	second := s.BuildCards(options, session, 1)

	if len(first) != 1 || len(second) != 1 {
		t.Fatal("expected one card per draw")
	}
	if first[0].ID == second[0].ID {
		t.Fatalf("card ids must differ across recycle, both %s", first[0].ID)
	}
}

func TestWithResolvedDoesNotMutateReceiver(t *testing.T) {
	session := NewSession()
	card := Card{ID: "c", Options: makePool(4, 4)}

	next := session.WithResolved(card)
	if len(session.AskedOptionIDs) != 0 || len(session.AskedTopics) != 0 {
		t.Fatal("WithResolved mutated the original session")
	}
	if len(next.AskedOptionIDs) != 4 || len(next.AskedTopics) != 4 {
		t.Fatalf("expected 4 ids and topics marked, got %d/%d",
			len(next.AskedOptionIDs), len(next.AskedTopics))
	}
}

func TestSessionTopicBiasHonored(t *testing.T) {
	// 8 options, topics 0..7. Session already asked topics 0..3: the next
	// card must come from topics 4..7.
	options := makePool(8, 8)
	session := NewSession()
	for i := 0; i < 4; i++ {
		session.AskedTopics[fmt.Sprintf("topic-%d", i)] = struct{}{}
	}

	cards := seeded(13).BuildCards(options, session, 1)
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	for _, o := range cards[0].Options {
		if _, asked := session.AskedTopics[o.Topic]; asked {
			t.Fatalf("card reused session topic %s", o.Topic)
		}
	}
}
