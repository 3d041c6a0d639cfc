package judge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/phrazzld/scry-engine/internal/config"
	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/platform/llm"
	"github.com/phrazzld/scry-engine/internal/redact"
)

// FromConfig builds the semantic judge described by cfg. It returns a nil
// judge when no provider is configured. The returned close function releases
// the cache connection and is always safe to call.
func FromConfig(ctx context.Context, cfg config.Config, logger *slog.Logger) (evaluation.SemanticJudge, func() error, error) {
	noop := func() error { return nil }
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.LLM.JudgeEnabled() {
		return nil, noop, nil
	}

	provider, err := llm.NewProvider(ctx, llm.ConfigFrom(cfg.LLM), logger)
	if err != nil {
		return nil, noop, fmt.Errorf("creating judge provider: %w", err)
	}

	var j evaluation.SemanticJudge = NewLLMJudge(provider, DefaultConfig(), logger)
	if !cfg.Cache.Enabled {
		return j, noop, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		// The judge still works uncached; every lookup will log a warning.
		logger.WarnContext(ctx, "verdict cache unreachable",
			"component", "judge_cache",
			"addr", cfg.Cache.Addr,
			"error", redact.Error(err))
	}

	return NewCachedJudge(j, NewRedisVerdictCache(client, cfg.Cache.TTL), logger), client.Close, nil
}
