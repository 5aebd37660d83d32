package ports

import (
	"context"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

// DeckStore provides the static 78-card catalog.
type DeckStore interface {
	Catalog(ctx context.Context) ([]domain.Card, error)
}
