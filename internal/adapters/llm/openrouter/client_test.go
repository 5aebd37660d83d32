package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cosmicweaver/arcana-go/internal/domain"
	"github.com/cosmicweaver/arcana-go/internal/ports"
)

func testInput() ports.InterpretInput {
	return ports.InterpretInput{
		Spread:   "Past, Present & Future",
		Question: "What path lies ahead?",
		Cards: []ports.CardInput{
			{
				Name:          "The Fool",
				PositionLabel: "Past",
				PositionIndex: 0,
				Orientation:   "upright",
				Keywords:      []string{"beginnings", "innocence"},
				Meaning:       "A leap of faith.",
			},
			{
				Name:          "The Tower",
				PositionLabel: "Present",
				PositionIndex: 1,
				Orientation:   "reversed",
			},
		},
	}
}

func chatReply(content string) string {
	quoted, _ := json.Marshal(content)
	return `{"choices":[{"message":{"content":` + string(quoted) + `}}]}`
}

func TestInterpret_Success(t *testing.T) {
	var gotReq chatRequest
	var gotAuth, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply("  The threads converge.  ")))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-key", server.URL, "test/model", nil, slog.Default())

	text, err := client.Interpret(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Interpret() error: %v", err)
	}
	if text != "The threads converge." {
		t.Errorf("expected trimmed content, got %q", text)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotReq.Model != "test/model" {
		t.Errorf("expected model test/model, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}

	user := gotReq.Messages[1].Content
	for _, want := range []string{"The Fool", "Past", "reversed", "beginnings", `"What path lies ahead?"`} {
		if !strings.Contains(user, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
}

func TestInterpret_FallbackModel(t *testing.T) {
	var models []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		json.NewDecoder(r.Body).Decode(&req)
		models = append(models, req.Model)
		if req.Model == "primary/model" {
			http.Error(w, "provider overloaded", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(chatReply("A second voice answers.")))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-key", server.URL, "primary/model", []string{"backup/model"}, slog.Default())

	text, err := client.Interpret(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Interpret() error: %v", err)
	}
	if text != "A second voice answers." {
		t.Errorf("unexpected text %q", text)
	}
	if len(models) != 2 || models[0] != "primary/model" || models[1] != "backup/model" {
		t.Errorf("unexpected model order: %v", models)
	}
}

func TestInterpret_AllModelsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-key", server.URL, "primary/model", []string{"backup/model"}, slog.Default())

	_, err := client.Interpret(context.Background(), testInput())
	if !errors.Is(err, domain.ErrUpstreamLLM) {
		t.Fatalf("expected ErrUpstreamLLM, got %v", err)
	}
}

func TestInterpret_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(chatReply("   ")))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-key", server.URL, "test/model", nil, slog.Default())

	if _, err := client.Interpret(context.Background(), testInput()); err == nil {
		t.Fatal("expected an error for blank interpretation")
	}
}

func TestInterpret_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-key", server.URL, "test/model", nil, slog.Default())

	if _, err := client.Interpret(context.Background(), testInput()); err == nil {
		t.Fatal("expected an error when no choices are returned")
	}
}
