package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt to a model and returns its reply.
type Provider interface {
	// Generate runs a single-turn completion. When req.Schema is set the
	// returned Content is JSON that validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn completion: an optional system instruction and
// one user prompt.
type Request struct {
	System string
	Prompt string

	// Schema requests native structured output. When nil the response
	// Content is the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema and keys the compiled-schema cache.
	// Kebab-case, e.g. "answer-verdict".
	Name string

	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	Content json.RawMessage

	// Model is the model that served the request.
	Model string

	InputTokens  int
	OutputTokens int
}

// reply is what a backend extracted from its SDK response before the shared
// checks in complete run.
type reply struct {
	text      string
	model     string
	truncated bool
	in, out   int
}

// complete turns a backend reply into a Response: truncated output is an
// error and structured output must match the request schema.
func complete(req Request, r reply) (*Response, error) {
	content := json.RawMessage(r.text)
	if r.truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{
		Content:      content,
		Model:        r.model,
		InputTokens:  r.in,
		OutputTokens: r.out,
	}, nil
}
