package domain

import "errors"

var (
	ErrUnknownSpread  = errors.New("unknown spread type")
	ErrNoSession      = errors.New("no active reading session")
	ErrInvalidCatalog = errors.New("card catalog must contain exactly 78 unique cards")
	ErrUpstreamLLM    = errors.New("upstream LLM failure")
)
