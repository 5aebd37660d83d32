package ports

import (
	"context"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

// HistoryStore persists completed readings and the daily-streak state.
// Implementations write through on every mutation; the single-session
// model means there is at most one writer.
type HistoryStore interface {
	SaveReading(ctx context.Context, r domain.Reading) error
	ListReadings(ctx context.Context) ([]domain.Reading, error)
	GetReading(ctx context.Context, id string) (domain.Reading, bool, error)
	DeleteReading(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error
	StreakState(ctx context.Context) (domain.StreakState, error)
	SetStreakState(ctx context.Context, st domain.StreakState) error
}
