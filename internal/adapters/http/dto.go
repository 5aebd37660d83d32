package http

import (
	"time"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

// SessionResponse is the read-only session view rendered to the UI. It is
// sufficient to draw any step without the UI keeping its own engine state.
type SessionResponse struct {
	Step      domain.Step         `json:"step"`
	Spread    domain.SpreadConfig `json:"spread"`
	Question  string              `json:"question,omitempty"`
	Drawn     []DrawnCardResponse `json:"drawn"`
	Remaining int                 `json:"remaining"`
	Shuffled  bool                `json:"shuffled"`
	Cut       bool                `json:"cut"`
}

type DrawnCardResponse struct {
	Card           domain.Card        `json:"card"`
	Orientation    domain.Orientation `json:"orientation"`
	SpreadPosition int                `json:"spread_position"`
}

type ReadingResponse struct {
	ID             string              `json:"id"`
	SpreadType     domain.SpreadType   `json:"spread_type"`
	Question       string              `json:"question,omitempty"`
	Cards          []DrawnCardResponse `json:"cards"`
	Interpretation string              `json:"interpretation,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	Favorite       bool                `json:"favorite"`
}

type StartSessionRequest struct {
	Spread   string `json:"spread"`
	Question string `json:"question"`
}

type QuestionRequest struct {
	Question string `json:"question"`
}

type CutRequest struct {
	Position int `json:"position"`
}

type DrawRequest struct {
	CardID string `json:"card_id"`
}

type SaveRequest struct {
	Interpret bool `json:"interpret"`
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type PostRequest struct {
	Title          string `json:"title"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	Category       string `json:"category"`
	WatcherInsight string `json:"watcher_insight"`
	ImageURL       string `json:"image_url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toSessionResponse(s domain.Session) SessionResponse {
	return SessionResponse{
		Step:      s.Step,
		Spread:    s.Spread,
		Question:  s.Question,
		Drawn:     toDrawnCards(s.Drawn),
		Remaining: len(s.Deck.Remaining),
		Shuffled:  s.Deck.Shuffled,
		Cut:       s.Deck.Cut,
	}
}

func toReadingResponse(r domain.Reading) ReadingResponse {
	return ReadingResponse{
		ID:             r.ID,
		SpreadType:     r.SpreadType,
		Question:       r.Question,
		Cards:          toDrawnCards(r.Cards),
		Interpretation: r.Interpretation,
		CreatedAt:      r.CreatedAt,
		Favorite:       r.Favorite,
	}
}

func toDrawnCards(cards []domain.DrawnCard) []DrawnCardResponse {
	out := make([]DrawnCardResponse, len(cards))
	for i, dc := range cards {
		out[i] = DrawnCardResponse{
			Card:           dc.Card,
			Orientation:    dc.Orientation,
			SpreadPosition: dc.SpreadPosition,
		}
	}
	return out
}

func (r PostRequest) toDomain() domain.BlogPost {
	return domain.BlogPost{
		Title:          r.Title,
		Excerpt:        r.Excerpt,
		Content:        r.Content,
		Category:       domain.BlogCategory(r.Category),
		WatcherInsight: r.WatcherInsight,
		ImageURL:       r.ImageURL,
	}
}
