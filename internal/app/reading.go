package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cosmicweaver/arcana-go/internal/domain"
	"github.com/cosmicweaver/arcana-go/internal/ports"
)

// ErrSessionIncomplete is returned when a save is attempted before every
// spread position holds a card.
var ErrSessionIncomplete = errors.New("reading session is not complete")

// FallbackInterpretation substitutes for the oracle when the upstream call
// fails. Its absence never blocks saving a reading.
const FallbackInterpretation = "The connection to the cosmic weave is disrupted. Please try again later."

// ReadingService owns at most one active reading session and the reading
// history. Engine operations are serialized by a mutex so the single-writer
// model holds even under a concurrent HTTP server.
type ReadingService struct {
	mu          sync.Mutex
	decks       ports.DeckStore
	history     ports.HistoryStore
	interpreter ports.Interpreter
	rng         domain.RNG
	now         func() time.Time
	logger      *slog.Logger

	session *domain.Session
}

func NewReadingService(decks ports.DeckStore, history ports.HistoryStore, interpreter ports.Interpreter, rng domain.RNG, logger *slog.Logger) *ReadingService {
	return &ReadingService{
		decks:       decks,
		history:     history,
		interpreter: interpreter,
		rng:         rng,
		now:         time.Now,
		logger:      logger,
	}
}

// StartSession begins a reading for the given spread. Any session already
// in progress is discarded, unsaved.
func (s *ReadingService) StartSession(ctx context.Context, spreadType domain.SpreadType, question string) (domain.Session, error) {
	spread, ok := domain.SpreadByType(spreadType)
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: %s", domain.ErrUnknownSpread, spreadType)
	}
	catalog, err := s.decks.Catalog(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.NewSession(spread, question, catalog, s.rng)
	return *s.session, nil
}

// Session returns a copy of the active session, if one exists.
func (s *ReadingService) Session() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// CancelSession discards the active session without creating a history
// record. Reports whether there was a session to discard.
func (s *ReadingService) CancelSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.session != nil
	s.session = nil
	return had
}

// SetQuestion updates the question on the active session.
func (s *ReadingService) SetQuestion(question string) domain.OpOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.OpIgnored
	}
	s.session.SetQuestion(question)
	return domain.OpApplied
}

// Shuffle performs the user's ritual shuffle.
func (s *ReadingService) Shuffle() domain.OpOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.OpIgnored
	}
	return s.session.Shuffle(s.rng)
}

// Cut cuts the deck at the given depth.
func (s *ReadingService) Cut(position int) domain.OpOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.OpIgnored
	}
	return s.session.Cut(position)
}

// Draw takes one card into the next spread position. OpIgnored means there
// was no session or no card left to draw.
func (s *ReadingService) Draw(cardID string) (domain.DrawnCard, domain.OpOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.DrawnCard{}, domain.OpIgnored
	}
	drawn, ok := s.session.Draw(cardID, s.rng)
	if !ok {
		return domain.DrawnCard{}, domain.OpIgnored
	}
	return drawn, domain.OpApplied
}

// DrawAll fills every remaining spread position in one step, for skipping
// the card-by-card ritual. OpIgnored means no session or nothing to draw.
func (s *ReadingService) DrawAll() ([]domain.DrawnCard, domain.OpOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, domain.OpIgnored
	}
	drawn := s.session.DrawAll(s.rng)
	if len(drawn) == 0 {
		return nil, domain.OpIgnored
	}
	return drawn, domain.OpApplied
}

// Reveal advances the session past the reveal step.
func (s *ReadingService) Reveal() domain.OpOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return domain.OpIgnored
	}
	return s.session.Reveal()
}

// SaveSession finalizes the active session into a Reading, folds it into
// history and streak state, and clears the session. With interpret set, the
// oracle is consulted; its failure is absorbed with a fallback text.
func (s *ReadingService) SaveSession(ctx context.Context, interpret bool) (domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.Reading{}, domain.ErrNoSession
	}
	if !s.session.Complete() {
		return domain.Reading{}, ErrSessionIncomplete
	}

	var interpretation string
	if interpret {
		interpretation = s.interpret(ctx, s.session)
	}

	reading := domain.Reading{
		ID:             uuid.NewString(),
		SpreadType:     s.session.Spread.Type,
		Question:       s.session.Question,
		Cards:          s.session.Drawn,
		Interpretation: interpretation,
		CreatedAt:      s.now(),
	}

	if err := s.history.SaveReading(ctx, reading); err != nil {
		return domain.Reading{}, fmt.Errorf("save reading: %w", err)
	}

	if reading.IsDaily() {
		st, err := s.history.StreakState(ctx)
		if err != nil {
			return domain.Reading{}, fmt.Errorf("load streak state: %w", err)
		}
		st = domain.AdvanceStreak(st, reading.ID, reading.CreatedAt)
		if err := s.history.SetStreakState(ctx, st); err != nil {
			return domain.Reading{}, fmt.Errorf("save streak state: %w", err)
		}
	}

	s.session = nil
	return reading, nil
}

func (s *ReadingService) interpret(ctx context.Context, session *domain.Session) string {
	in := ports.InterpretInput{
		Spread:   session.Spread.Name,
		Question: session.Question,
	}
	for _, dc := range session.Drawn {
		var label string
		if dc.SpreadPosition < len(session.Spread.Positions) {
			label = session.Spread.Positions[dc.SpreadPosition].Label
		}
		in.Cards = append(in.Cards, ports.CardInput{
			Name:          dc.Card.Name,
			PositionLabel: label,
			PositionIndex: dc.SpreadPosition,
			Orientation:   string(dc.Orientation),
			Keywords:      dc.Card.Keywords(dc.Orientation),
			Meaning:       dc.Card.Meaning(dc.Orientation),
		})
	}

	text, err := s.interpreter.Interpret(ctx, in)
	if err != nil {
		s.logger.WarnContext(ctx, "oracle unavailable, using fallback", "error", err)
		return FallbackInterpretation
	}
	return text
}

// DailyReading returns today's daily reading if one was recorded today; the
// bool reports presence, signaling whether a new daily reading is due.
func (s *ReadingService) DailyReading(ctx context.Context) (domain.Reading, bool, error) {
	st, err := s.history.StreakState(ctx)
	if err != nil {
		return domain.Reading{}, false, err
	}
	if st.DailyReadingID == "" || st.LastDailyDate != s.now().Format(domain.DateLayout) {
		return domain.Reading{}, false, nil
	}
	return s.history.GetReading(ctx, st.DailyReadingID)
}

// Streak returns the consecutive-day daily-reading count.
func (s *ReadingService) Streak(ctx context.Context) (int, error) {
	st, err := s.history.StreakState(ctx)
	if err != nil {
		return 0, err
	}
	return st.Streak, nil
}

// History returns all saved readings, most recent first.
func (s *ReadingService) History(ctx context.Context) ([]domain.Reading, error) {
	return s.history.ListReadings(ctx)
}

// DeleteReading removes one reading from history; absent IDs are a no-op.
func (s *ReadingService) DeleteReading(ctx context.Context, id string) error {
	return s.history.DeleteReading(ctx, id)
}

// ToggleFavorite flips a reading's favorite flag; absent IDs are a no-op.
func (s *ReadingService) ToggleFavorite(ctx context.Context, id string) error {
	return s.history.ToggleFavorite(ctx, id)
}

// Stats aggregates card appearances across the whole history.
func (s *ReadingService) Stats(ctx context.Context) (domain.CardStats, error) {
	readings, err := s.history.ListReadings(ctx)
	if err != nil {
		return domain.CardStats{}, err
	}

	stats := domain.CardStats{
		TotalReadings: len(readings),
		CardCounts:    make(map[string]int),
	}
	for _, r := range readings {
		for _, dc := range r.Cards {
			stats.CardCounts[dc.Card.Name]++
		}
	}
	best := 0
	for name, count := range stats.CardCounts {
		if count > best || (count == best && name < stats.MostDrawnCard) {
			best = count
			stats.MostDrawnCard = name
		}
	}
	return stats, nil
}
