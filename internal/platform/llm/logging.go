package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-engine/internal/platform/logger"
	"github.com/phrazzld/scry-engine/internal/redact"
)

// LoggingProvider is a decorator that logs every request's outcome, latency
// and token usage. Prompts and responses are not logged.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger uses the
// context logger or slog.Default at call time.
func WithLogging(p Provider, l *slog.Logger) Provider {
	return &LoggingProvider{inner: p, logger: l}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	log := l.logger
	if log == nil {
		log = logger.FromContext(ctx)
	}
	log = log.With("component", "llm", "model", l.inner.ModelID())

	if err != nil {
		log.WarnContext(ctx, "LLM request failed",
			"latency_ms", latency.Milliseconds(),
			"error", redact.Error(err))
		return nil, err
	}

	log.DebugContext(ctx, "LLM request completed",
		"latency_ms", latency.Milliseconds(),
		"input_tokens", resp.InputTokens,
		"output_tokens", resp.OutputTokens)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
