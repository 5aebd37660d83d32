package decks_test

import (
	"context"
	"testing"

	"github.com/cosmicweaver/arcana-go/internal/adapters/decks"
	"github.com/cosmicweaver/arcana-go/internal/domain"
)

func TestCatalog_FullDeck(t *testing.T) {
	store := decks.NewEmbeddedStore()
	cards, err := store.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cards) != domain.DeckSize {
		t.Fatalf("expected %d cards, got %d", domain.DeckSize, len(cards))
	}

	seen := make(map[string]bool, len(cards))
	bySuit := make(map[domain.Suit]int)
	byArcana := make(map[domain.Arcana]int)
	for _, c := range cards {
		if seen[c.ID] {
			t.Errorf("duplicate card ID %s", c.ID)
		}
		seen[c.ID] = true
		bySuit[c.Suit]++
		byArcana[c.Arcana]++
	}

	if byArcana[domain.ArcanaMajor] != 22 {
		t.Errorf("expected 22 major arcana, got %d", byArcana[domain.ArcanaMajor])
	}
	if byArcana[domain.ArcanaMinor] != 56 {
		t.Errorf("expected 56 minor arcana, got %d", byArcana[domain.ArcanaMinor])
	}
	for _, suit := range []domain.Suit{domain.SuitWands, domain.SuitCups, domain.SuitSwords, domain.SuitPentacles} {
		if bySuit[suit] != 14 {
			t.Errorf("suit %s: expected 14 cards, got %d", suit, bySuit[suit])
		}
	}
}

func TestCatalog_CardShape(t *testing.T) {
	store := decks.NewEmbeddedStore()
	cards, err := store.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range cards {
		if c.Name == "" || c.NameThai == "" {
			t.Errorf("card %s missing names", c.ID)
		}
		if len(c.KeywordsUpright) == 0 || len(c.KeywordsReversed) == 0 {
			t.Errorf("card %s missing keywords", c.ID)
		}
		if c.MeaningUpright == "" || c.MeaningReversed == "" {
			t.Errorf("card %s missing meanings", c.ID)
		}
		if c.ImageURL == "" {
			t.Errorf("card %s missing image", c.ID)
		}
		if c.Arcana == domain.ArcanaMinor && (c.Number < 1 || c.Number > 14) {
			t.Errorf("minor card %s has rank %d", c.ID, c.Number)
		}
		if c.Arcana == domain.ArcanaMajor && c.Number != 0 {
			t.Errorf("major card %s should have no rank, got %d", c.ID, c.Number)
		}
	}
}

func TestCatalog_OrientationLookups(t *testing.T) {
	store := decks.NewEmbeddedStore()
	cards, err := store.Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fool := cards[0]
	if fool.ID != "the-fool" {
		t.Fatalf("expected the-fool first, got %s", fool.ID)
	}
	if fool.Meaning(domain.Upright) == fool.Meaning(domain.Reversed) {
		t.Error("upright and reversed meanings should differ")
	}
	if len(fool.Keywords(domain.Reversed)) == 0 {
		t.Error("reversed keywords should be present")
	}
}
