// Package llm abstracts the language-model provider used for resume
// extraction and generation. Callers receive raw model output; cleaning and
// schema repair happen downstream so every provider is treated the same.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers.
type Client interface {
	// ExtractResume converts raw resume text into the structured resume JSON.
	ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error)
	// GenerateFromProfile builds an ATS-optimized resume JSON from a student
	// profile payload.
	GenerateFromProfile(ctx context.Context, profileJSON json.RawMessage) (json.RawMessage, error)
}

// ErrNotConfigured is returned when no provider credentials are present.
// Handlers treat it as a signal to fall back to heuristic text parsing.
var ErrNotConfigured = errors.New("llm provider not configured")

// Placeholder is the client used when no API key is configured.
type Placeholder struct{}

func (Placeholder) ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	_ = ctx
	_ = resumeText
	return nil, ErrNotConfigured
}

func (Placeholder) GenerateFromProfile(ctx context.Context, profileJSON json.RawMessage) (json.RawMessage, error) {
	_ = ctx
	_ = profileJSON
	return nil, ErrNotConfigured
}

var _ Client = Placeholder{}
