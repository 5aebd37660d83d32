// Package storage handles SQLite persistence for reading history, streak
// state and blog posts.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cosmicweaver/arcana-go/internal/domain"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access. It backs both the history and blog ports.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS readings (
			id TEXT PRIMARY KEY,
			spread_type TEXT NOT NULL,
			question TEXT NOT NULL,
			cards TEXT NOT NULL,
			interpretation TEXT NOT NULL,
			created_at TEXT NOT NULL,
			favorite INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_readings_created_at ON readings(created_at);`,
		`CREATE TABLE IF NOT EXISTS streak_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			daily_reading_id TEXT NOT NULL,
			last_daily_date TEXT NOT NULL,
			streak INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			excerpt TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL,
			watcher_insight TEXT NOT NULL,
			image_url TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveReading stores a completed reading.
func (s *Store) SaveReading(ctx context.Context, r domain.Reading) error {
	cards, err := json.Marshal(r.Cards)
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO readings (id, spread_type, question, cards, interpretation, created_at, favorite)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		string(r.SpreadType),
		r.Question,
		string(cards),
		r.Interpretation,
		r.CreatedAt.Format(time.RFC3339Nano),
		boolToInt(r.Favorite),
	)
	return err
}

// ListReadings returns the full history, most recent first.
func (s *Store) ListReadings(ctx context.Context) ([]domain.Reading, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, spread_type, question, cards, interpretation, created_at, favorite
		 FROM readings
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []domain.Reading
	for rows.Next() {
		r, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}

// GetReading fetches one reading by ID; the second return reports presence.
func (s *Store) GetReading(ctx context.Context, id string) (domain.Reading, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, spread_type, question, cards, interpretation, created_at, favorite
		 FROM readings WHERE id = ?`, id)
	r, err := scanReading(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reading{}, false, nil
	}
	if err != nil {
		return domain.Reading{}, false, err
	}
	return r, true, nil
}

// DeleteReading removes one reading; absent IDs are a no-op.
func (s *Store) DeleteReading(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id)
	return err
}

// ToggleFavorite flips the favorite flag; absent IDs are a no-op.
func (s *Store) ToggleFavorite(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE readings SET favorite = 1 - favorite WHERE id = ?`, id)
	return err
}

// StreakState loads the single-row daily-streak state; zero state if unset.
func (s *Store) StreakState(ctx context.Context) (domain.StreakState, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT daily_reading_id, last_daily_date, streak FROM streak_state WHERE id = 1`)
	var st domain.StreakState
	err := row.Scan(&st.DailyReadingID, &st.LastDailyDate, &st.Streak)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StreakState{}, nil
	}
	if err != nil {
		return domain.StreakState{}, err
	}
	return st, nil
}

// SetStreakState writes through the daily-streak state.
func (s *Store) SetStreakState(ctx context.Context, st domain.StreakState) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO streak_state (id, daily_reading_id, last_daily_date, streak)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			daily_reading_id = excluded.daily_reading_id,
			last_daily_date = excluded.last_daily_date,
			streak = excluded.streak`,
		st.DailyReadingID, st.LastDailyDate, st.Streak)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (domain.Reading, error) {
	var (
		r         domain.Reading
		spread    string
		cards     string
		createdAt string
		favorite  int
	)
	if err := row.Scan(&r.ID, &spread, &r.Question, &cards, &r.Interpretation, &createdAt, &favorite); err != nil {
		return domain.Reading{}, err
	}
	if err := json.Unmarshal([]byte(cards), &r.Cards); err != nil {
		return domain.Reading{}, fmt.Errorf("unmarshal cards for %s: %w", r.ID, err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Reading{}, err
	}
	r.SpreadType = domain.SpreadType(spread)
	r.CreatedAt = parsed
	r.Favorite = favorite != 0
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
