package ports

import "context"

// InterpretInput holds everything the oracle needs to weave a reading.
type InterpretInput struct {
	Spread   string
	Question string
	Cards    []CardInput
}

// CardInput is a simplified drawn-card representation for the prompt.
type CardInput struct {
	Name          string
	PositionLabel string
	PositionIndex int
	Orientation   string
	Keywords      []string
	Meaning       string
}

// Interpreter generates a tarot interpretation via an LLM. The engine
// treats the returned text as opaque; a failure here is never fatal to a
// reading.
type Interpreter interface {
	Interpret(ctx context.Context, in InterpretInput) (string, error)
}
