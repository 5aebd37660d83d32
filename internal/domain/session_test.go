package domain_test

import (
	"testing"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

func spread(t *testing.T, st domain.SpreadType) domain.SpreadConfig {
	t.Helper()
	s, ok := domain.SpreadByType(st)
	if !ok {
		t.Fatalf("spread %s not in catalog", st)
	}
	return s
}

func TestNewSession_StartsAtAskQuestion(t *testing.T) {
	s := domain.NewSession(spread(t, domain.SpreadPastPresentFuture), "What next?", testCatalog(domain.DeckSize), newSeededRNG(1))

	if s.Step != domain.StepAskQuestion {
		t.Fatalf("expected %s, got %s", domain.StepAskQuestion, s.Step)
	}
	if s.Question != "What next?" {
		t.Errorf("unexpected question: %s", s.Question)
	}
	if len(s.Deck.Remaining) != domain.DeckSize {
		t.Errorf("deck should be dealt immediately, remaining %d", len(s.Deck.Remaining))
	}
}

func TestSession_ForwardWalkthrough(t *testing.T) {
	rng := newSeededRNG(9)
	s := domain.NewSession(spread(t, domain.SpreadPastPresentFuture), "", testCatalog(domain.DeckSize), rng)

	s.SetQuestion("Will the garden grow?")

	if outcome := s.Shuffle(rng); !outcome.Applied() {
		t.Fatal("shuffle must apply")
	}
	if s.Step != domain.StepCut {
		t.Fatalf("after shuffle expected %s, got %s", domain.StepCut, s.Step)
	}

	if outcome := s.Cut(17); !outcome.Applied() {
		t.Fatal("cut must apply after shuffle")
	}
	if s.Step != domain.StepDraw {
		t.Fatalf("after cut expected %s, got %s", domain.StepDraw, s.Step)
	}

	// First two draws stay in draw; the third fills the spread.
	for i := range 2 {
		if _, ok := s.Draw("", rng); !ok {
			t.Fatalf("draw %d failed", i)
		}
		if s.Step != domain.StepDraw {
			t.Fatalf("draw %d: expected step %s, got %s", i, domain.StepDraw, s.Step)
		}
	}
	if _, ok := s.Draw("", rng); !ok {
		t.Fatal("final draw failed")
	}
	if s.Step != domain.StepReveal {
		t.Fatalf("after final draw expected %s, got %s", domain.StepReveal, s.Step)
	}
	if !s.Complete() {
		t.Error("session should be complete")
	}

	if outcome := s.Reveal(); !outcome.Applied() {
		t.Fatal("reveal must apply once all cards are drawn")
	}
	if s.Step != domain.StepInterpret {
		t.Fatalf("after reveal expected %s, got %s", domain.StepInterpret, s.Step)
	}
}

func TestSession_CutBeforeShuffleIgnored(t *testing.T) {
	rng := newSeededRNG(4)
	s := domain.NewSession(spread(t, domain.SpreadSingle), "", testCatalog(domain.DeckSize), rng)

	if outcome := s.Cut(10); outcome.Applied() {
		t.Fatal("cut before shuffle must be ignored")
	}
	if s.Step != domain.StepAskQuestion {
		t.Errorf("ignored cut must not advance the step, got %s", s.Step)
	}
}

func TestSession_RevealBeforeDrawingIgnored(t *testing.T) {
	rng := newSeededRNG(4)
	s := domain.NewSession(spread(t, domain.SpreadSingle), "", testCatalog(domain.DeckSize), rng)

	if outcome := s.Reveal(); outcome.Applied() {
		t.Fatal("reveal with no drawn cards must be ignored")
	}
}

func TestSession_SpreadPositionsFillInOrder(t *testing.T) {
	rng := newSeededRNG(11)
	s := domain.NewSession(spread(t, domain.SpreadHorseshoe), "", testCatalog(domain.DeckSize), rng)
	s.Shuffle(rng)
	s.Cut(40)

	drawn := s.DrawAll(rng)
	if len(drawn) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(drawn))
	}
	for i, dc := range drawn {
		if dc.SpreadPosition != i {
			t.Errorf("card %d: expected spread position %d, got %d", i, i, dc.SpreadPosition)
		}
	}
}

func TestSession_DrawByIDBindsThatCard(t *testing.T) {
	rng := newSeededRNG(12)
	s := domain.NewSession(spread(t, domain.SpreadSingle), "", testCatalog(domain.DeckSize), rng)
	s.Shuffle(rng)
	s.Cut(3)

	target := s.Deck.Remaining[20].ID
	dc, ok := s.Draw(target, rng)
	if !ok {
		t.Fatal("expected a card")
	}
	if dc.Card.ID != target {
		t.Fatalf("expected %s, got %s", target, dc.Card.ID)
	}
	if s.Step != domain.StepReveal {
		t.Errorf("single spread should be revealed after one draw, got %s", s.Step)
	}
}

func TestSession_OrientationRoughlyBalanced(t *testing.T) {
	const draws = 10000
	rng := newSeededRNG(99)

	reversed := 0
	for range draws / domain.DeckSize {
		s := domain.NewSession(spread(t, domain.SpreadAstrological), "", testCatalog(domain.DeckSize), rng)
		s.Shuffle(rng)
		s.Cut(rng.Intn(domain.DeckSize))
		for range domain.DeckSize {
			dc, ok := s.Draw("", rng)
			if !ok {
				break
			}
			if dc.Orientation == domain.Reversed {
				reversed++
			}
		}
	}

	total := (draws / domain.DeckSize) * domain.DeckSize
	ratio := float64(reversed) / float64(total)
	if ratio < 0.45 || ratio > 0.55 {
		t.Errorf("reversed ratio %.3f outside [0.45, 0.55] over %d draws", ratio, total)
	}
}

func TestSession_DeterministicOrientationSequence(t *testing.T) {
	// One draw consumes one orientation roll after the removal, so a fixed
	// sequence pins the orientations.
	rng := &deterministicRNG{values: []int{0, 1, 0}}
	s := &domain.Session{
		Spread: spread(t, domain.SpreadPastPresentFuture),
		Deck: domain.Deck{
			Cards:     testCatalog(domain.DeckSize),
			Remaining: testCatalog(domain.DeckSize),
			Shuffled:  true,
		},
		Step: domain.StepDraw,
	}

	expected := []domain.Orientation{domain.Upright, domain.Reversed, domain.Upright}
	for i, want := range expected {
		dc, ok := s.Draw("", rng)
		if !ok {
			t.Fatalf("draw %d failed", i)
		}
		if dc.Orientation != want {
			t.Errorf("draw %d: expected %s, got %s", i, want, dc.Orientation)
		}
	}
}
