// Package decks holds the embedded 78-card catalog. The 22 major arcana
// are rich per-card data shipped as JSON; the 56 minor cards are composed
// from rank and suit tables at load time.
package decks

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

//go:embed data/*.json
var deckFS embed.FS

const majorArcanaFile = "data/major_arcana.json"

// EmbeddedStore serves the static catalog, loaded once and validated for
// exactly 78 unique card IDs. A violation is a data bug surfaced at load,
// not papered over downstream.
type EmbeddedStore struct {
	once  sync.Once
	cards []domain.Card
	err   error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := deckFS.ReadFile(majorArcanaFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded major arcana: %w", err)
		return
	}
	var majors []domain.Card
	if err := json.Unmarshal(raw, &majors); err != nil {
		s.err = fmt.Errorf("parse embedded major arcana: %w", err)
		return
	}
	for i := range majors {
		majors[i].Suit = domain.SuitMajor
		majors[i].Arcana = domain.ArcanaMajor
	}

	cards := append(majors, minorArcana()...)
	if err := validate(cards); err != nil {
		s.err = err
		return
	}
	s.cards = cards
}

// Catalog returns the full deck in canonical order.
func (s *EmbeddedStore) Catalog(_ context.Context) ([]domain.Card, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.cards, nil
}

func validate(cards []domain.Card) error {
	if len(cards) != domain.DeckSize {
		return fmt.Errorf("%w: got %d cards", domain.ErrInvalidCatalog, len(cards))
	}
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidCatalog, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}
