// Package llm provides a provider-neutral interface to large language models
// with structured JSON output.
//
// Gemini, OpenAI and Anthropic backends are available, plus a deterministic
// MockProvider. NewProvider wraps the selected backend with logging and
// retry decorators. Responses requested with a Schema are validated against
// it before they are returned.
package llm
