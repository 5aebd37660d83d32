package domain_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// zeroRNG keeps the original order through a Fisher-Yates pass.
type zeroRNG struct{}

func (zeroRNG) Intn(int) int { return 0 }

// seededRNG wraps math/rand/v2 with a fixed seed for statistical tests.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

func testCatalog(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range n {
		cards[i] = domain.Card{
			ID:   fmt.Sprintf("card-%02d", i),
			Name: fmt.Sprintf("Card %02d", i),
		}
	}
	return cards
}

func TestNewDeck_FullAndUntouchedGates(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), newSeededRNG(1))

	if len(deck.Cards) != domain.DeckSize {
		t.Fatalf("expected %d cards, got %d", domain.DeckSize, len(deck.Cards))
	}
	if len(deck.Remaining) != domain.DeckSize {
		t.Fatalf("expected %d remaining, got %d", domain.DeckSize, len(deck.Remaining))
	}
	// The creation-time randomization is not the ritual shuffle.
	if deck.Shuffled {
		t.Error("new deck must not have the shuffled gate open")
	}
	if deck.Cut {
		t.Error("new deck must not have the cut gate open")
	}
}

func TestNewDeck_TruncatesOversizedCatalog(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize+13), newSeededRNG(1))
	if len(deck.Cards) != domain.DeckSize {
		t.Fatalf("expected truncation to %d, got %d", domain.DeckSize, len(deck.Cards))
	}
}

func TestShuffle_NoDuplication(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), newSeededRNG(2))
	rng := newSeededRNG(3)

	for range 20 {
		deck.Shuffle(rng)
		assertFullUniqueDeck(t, deck.Cards)
		deck.CutAt(rng.Intn(domain.DeckSize))
		assertFullUniqueDeck(t, deck.Cards)
	}
	if !deck.Shuffled || !deck.Cut {
		t.Error("gates should be open after shuffle and cut")
	}
}

func TestShuffle_Uniformity(t *testing.T) {
	const trials = 2000
	catalog := testCatalog(domain.DeckSize)
	rng := newSeededRNG(42)

	// Count how often each card lands in position 0.
	counts := make(map[string]int)
	for range trials {
		deck := domain.NewDeck(catalog, rng)
		deck.Shuffle(rng)
		counts[deck.Cards[0].ID]++
	}

	// Expected trials/78 ≈ 25.6; allow a generous band.
	expected := float64(trials) / float64(domain.DeckSize)
	for id, count := range counts {
		if float64(count) > expected*3 {
			t.Errorf("card %s appeared at position 0 %d times (expected ~%.1f)", id, count, expected)
		}
	}
	if len(counts) < domain.DeckSize/2 {
		t.Errorf("only %d distinct cards ever reached position 0", len(counts))
	}
}

func TestCutAt_IsRotation(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), zeroRNG{})
	deck.Shuffle(zeroRNG{})
	before := make([]domain.Card, len(deck.Cards))
	copy(before, deck.Cards)

	const position = 30
	if outcome := deck.CutAt(position); !outcome.Applied() {
		t.Fatal("cut on a shuffled deck must apply")
	}

	for i, c := range deck.Cards {
		want := before[(position+i)%len(before)]
		if c.ID != want.ID {
			t.Fatalf("position %d: expected %s, got %s", i, want.ID, c.ID)
		}
	}
	if len(deck.Remaining) != len(deck.Cards) {
		t.Error("remaining must track the rotated order")
	}
}

func TestCutAt_IgnoredBeforeShuffle(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), zeroRNG{})
	before := make([]domain.Card, len(deck.Cards))
	copy(before, deck.Cards)

	if outcome := deck.CutAt(10); outcome.Applied() {
		t.Fatal("cut before shuffle must be ignored")
	}
	for i, c := range deck.Cards {
		if c.ID != before[i].ID {
			t.Fatal("ignored cut must not reorder the deck")
		}
	}
	if deck.Cut {
		t.Error("ignored cut must not open the cut gate")
	}
}

func TestCutAt_IgnoredOutOfRange(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), zeroRNG{})
	deck.Shuffle(zeroRNG{})

	for _, pos := range []int{-1, domain.DeckSize, domain.DeckSize + 5} {
		if outcome := deck.CutAt(pos); outcome.Applied() {
			t.Errorf("cut at %d must be ignored", pos)
		}
	}
}

func TestDraw_RemovesExactlyOne(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), newSeededRNG(7))

	drawnIDs := make(map[string]bool)
	for i := range domain.DeckSize {
		before := len(deck.Remaining)
		card, ok := deck.Draw("")
		if !ok {
			t.Fatalf("draw %d: deck exhausted early", i)
		}
		if len(deck.Remaining) != before-1 {
			t.Fatalf("draw %d: remaining went %d -> %d", i, before, len(deck.Remaining))
		}
		if drawnIDs[card.ID] {
			t.Fatalf("card %s drawn twice", card.ID)
		}
		drawnIDs[card.ID] = true
		for _, c := range deck.Remaining {
			if c.ID == card.ID {
				t.Fatalf("card %s still in remaining after draw", card.ID)
			}
		}
	}

	if _, ok := deck.Draw(""); ok {
		t.Fatal("draw on empty deck must report no card")
	}
}

func TestDraw_ByID(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), zeroRNG{})

	target := deck.Remaining[5].ID
	card, ok := deck.Draw(target)
	if !ok {
		t.Fatal("expected a card")
	}
	if card.ID != target {
		t.Fatalf("expected %s, got %s", target, card.ID)
	}
}

func TestDraw_UnknownIDFallsBackToFirst(t *testing.T) {
	deck := domain.NewDeck(testCatalog(domain.DeckSize), zeroRNG{})

	first := deck.Remaining[0].ID
	card, ok := deck.Draw("no-such-card")
	if !ok {
		t.Fatal("expected a card")
	}
	if card.ID != first {
		t.Fatalf("expected fallback to first remaining %s, got %s", first, card.ID)
	}
}

func assertFullUniqueDeck(t *testing.T, cards []domain.Card) {
	t.Helper()
	if len(cards) != domain.DeckSize {
		t.Fatalf("expected %d cards, got %d", domain.DeckSize, len(cards))
	}
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			t.Fatalf("duplicate card %s", c.ID)
		}
		seen[c.ID] = true
	}
}
