package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cosmicweaver/arcana-go/internal/app"
	"github.com/cosmicweaver/arcana-go/internal/domain"
	"github.com/cosmicweaver/arcana-go/internal/ports"
)

const maxQuestionLen = 500

type Handler struct {
	readings *app.ReadingService
	blog     *app.BlogService
	decks    ports.DeckStore
}

func NewHandler(readings *app.ReadingService, blog *app.BlogService, decks ports.DeckStore) *Handler {
	return &Handler{readings: readings, blog: blog, decks: decks}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	e.GET("/v1/spreads", h.ListSpreads)
	e.GET("/v1/spreads/:type", h.GetSpread)
	e.GET("/v1/cards", h.ListCards)
	e.GET("/v1/cards/:id", h.GetCard)

	e.POST("/v1/session", h.StartSession)
	e.GET("/v1/session", h.GetSession)
	e.DELETE("/v1/session", h.CancelSession)
	e.POST("/v1/session/question", h.SetQuestion)
	e.POST("/v1/session/shuffle", h.Shuffle)
	e.POST("/v1/session/cut", h.Cut)
	e.POST("/v1/session/draw", h.Draw)
	e.POST("/v1/session/draw-all", h.DrawAll)
	e.POST("/v1/session/reveal", h.Reveal)
	e.POST("/v1/session/save", h.SaveSession)

	e.GET("/v1/readings", h.ListReadings)
	e.GET("/v1/readings/daily", h.DailyReading)
	e.GET("/v1/readings/streak", h.Streak)
	e.GET("/v1/readings/stats", h.Stats)
	e.POST("/v1/readings/:id/favorite", h.ToggleFavorite)
	e.DELETE("/v1/readings/:id", h.DeleteReading)

	e.GET("/v1/posts", h.ListPosts)
	e.POST("/v1/posts", h.CreatePost)
	e.GET("/v1/posts/:id", h.GetPost)
	e.PUT("/v1/posts/:id", h.UpdatePost)
	e.DELETE("/v1/posts/:id", h.DeletePost)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSpreads(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Spreads())
}

func (h *Handler) GetSpread(c echo.Context) error {
	spread, ok := domain.SpreadByType(domain.SpreadType(c.Param("type")))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown spread type"})
	}
	return c.JSON(http.StatusOK, spread)
}

func (h *Handler) ListCards(c echo.Context) error {
	catalog, err := h.decks.Catalog(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, catalog)
}

func (h *Handler) GetCard(c echo.Context) error {
	catalog, err := h.decks.Catalog(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	id := c.Param("id")
	for _, card := range catalog {
		if card.ID == id {
			return c.JSON(http.StatusOK, card)
		}
	}
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown card"})
}

func (h *Handler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}

	session, err := h.readings.StartSession(c.Request().Context(), domain.SpreadType(req.Spread), req.Question)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (h *Handler) GetSession(c echo.Context) error {
	session, ok := h.readings.Session()
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active session"})
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *Handler) CancelSession(c echo.Context) error {
	if !h.readings.CancelSession() {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active session"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SetQuestion(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Question) > maxQuestionLen {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question must be at most 500 characters"})
	}
	return h.outcome(c, h.readings.SetQuestion(req.Question))
}

func (h *Handler) Shuffle(c echo.Context) error {
	return h.outcome(c, h.readings.Shuffle())
}

func (h *Handler) Cut(c echo.Context) error {
	var req CutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	return h.outcome(c, h.readings.Cut(req.Position))
}

func (h *Handler) Draw(c echo.Context) error {
	var req DrawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if _, outcome := h.readings.Draw(req.CardID); !outcome.Applied() {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "no card to draw"})
	}
	session, _ := h.readings.Session()
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *Handler) DrawAll(c echo.Context) error {
	if _, outcome := h.readings.DrawAll(); !outcome.Applied() {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "no cards to draw"})
	}
	session, _ := h.readings.Session()
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *Handler) Reveal(c echo.Context) error {
	return h.outcome(c, h.readings.Reveal())
}

func (h *Handler) SaveSession(c echo.Context) error {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	reading, err := h.readings.SaveSession(c.Request().Context(), req.Interpret)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toReadingResponse(reading))
}

func (h *Handler) ListReadings(c echo.Context) error {
	readings, err := h.readings.History(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	out := make([]ReadingResponse, len(readings))
	for i, r := range readings {
		out[i] = toReadingResponse(r)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DailyReading(c echo.Context) error {
	reading, ok, err := h.readings.DailyReading(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no daily reading recorded today"})
	}
	return c.JSON(http.StatusOK, toReadingResponse(reading))
}

func (h *Handler) Streak(c echo.Context) error {
	streak, err := h.readings.Streak(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, StreakResponse{Streak: streak})
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.readings.Stats(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ToggleFavorite(c echo.Context) error {
	if err := h.readings.ToggleFavorite(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteReading(c echo.Context) error {
	if err := h.readings.DeleteReading(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListPosts(c echo.Context) error {
	posts, err := h.blog.Posts(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *Handler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	post, err := h.blog.CreatePost(c.Request().Context(), req.toDomain())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *Handler) GetPost(c echo.Context) error {
	post, ok, err := h.blog.Post(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown post"})
	}
	return c.JSON(http.StatusOK, post)
}

func (h *Handler) UpdatePost(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	post := req.toDomain()
	post.ID = c.Param("id")
	ok, err := h.blog.UpdatePost(c.Request().Context(), post)
	if err != nil {
		return mapError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown post"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeletePost(c echo.Context) error {
	if err := h.blog.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// outcome renders a typed engine result: ignored preconditions are 409, not
// errors, so the UI can tell a refused step from a broken one.
func (h *Handler) outcome(c echo.Context, o domain.OpOutcome) error {
	if !o.Applied() {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "operation ignored: preconditions not met"})
	}
	session, ok := h.readings.Session()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrUnknownSpread):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoSession):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrSessionIncomplete):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrInvalidPost):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
