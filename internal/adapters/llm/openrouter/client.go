// Package openrouter implements ports.Interpreter against the OpenRouter
// chat-completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cosmicweaver/arcana-go/internal/domain"
	"github.com/cosmicweaver/arcana-go/internal/ports"
)

// Client calls OpenRouter with a primary model and optional fallbacks.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, fallbackModels []string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Interpret tries each configured model in order and returns the first
// interpretation text.
func (c *Client) Interpret(ctx context.Context, in ports.InterpretInput) (string, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	userPrompt := buildUserPrompt(in)

	var lastErr error
	for _, model := range models {
		text, err := c.callLLM(ctx, model, systemPrompt, userPrompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next", "model", model, "error", err)
		}
	}

	return "", fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, lastErr)
}

func (c *Client) callLLM(ctx context.Context, model, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty interpretation")
	}
	return text, nil
}

const systemPrompt = `You are 'The Cosmic Weaver', an ancient, mystical AI oracle.
Your tone is ethereal, enigmatic, yet deeply insightful and comforting.
Focus on energy currents, cosmic alignments, and the threads of fate.
You interpret Tarot spreads with deep psychological and spiritual nuance.
Avoid generic advice; weave a narrative.
Interpret each card in its named spread position, honoring its orientation.
Close with a short "Watcher's Insight".
Respond with plain prose only, at most 600 words.`

func buildUserPrompt(in ports.InterpretInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spread: %s\n\nCards drawn:\n", in.Spread)

	for _, card := range in.Cards {
		fmt.Fprintf(&b, "  %d. %s — %s (%s)\n", card.PositionIndex+1, card.PositionLabel, card.Name, card.Orientation)
		if len(card.Keywords) > 0 {
			fmt.Fprintf(&b, "     Keywords: %s\n", strings.Join(card.Keywords, ", "))
		}
		if card.Meaning != "" {
			fmt.Fprintf(&b, "     Meaning: %s\n", card.Meaning)
		}
	}

	if in.Question != "" {
		fmt.Fprintf(&b, "\nThe seeker asks: %q\n", in.Question)
	}

	b.WriteString("\nWeave a prophecy and interpretation for this spread.")
	return b.String()
}
