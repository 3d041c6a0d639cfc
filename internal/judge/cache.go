package judge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phrazzld/scry-engine/internal/evaluation"
	"github.com/phrazzld/scry-engine/internal/platform/llm"
	"github.com/phrazzld/scry-engine/internal/redact"
)

// KeyPrefix namespaces verdict keys in Redis.
const KeyPrefix = "scry:verdict:"

// ErrCacheMiss is returned by VerdictCache.Get when no verdict is stored.
var ErrCacheMiss = errors.New("verdict cache: key not found")

// VerdictCache stores verdicts by request key.
type VerdictCache interface {
	Get(ctx context.Context, key string) (*evaluation.Verdict, error)
	Set(ctx context.Context, key string, verdict *evaluation.Verdict) error
}

// RedisVerdictCache is a VerdictCache backed by Redis string keys with a TTL.
type RedisVerdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisVerdictCache creates a cache over client.
func NewRedisVerdictCache(client *redis.Client, ttl time.Duration) *RedisVerdictCache {
	return &RedisVerdictCache{client: client, ttl: ttl}
}

// Get returns the cached verdict or ErrCacheMiss.
func (c *RedisVerdictCache) Get(ctx context.Context, key string) (*evaluation.Verdict, error) {
	data, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("verdict cache get: %w", err)
	}

	if err := llm.ValidateJSON(VerdictSchema, data); err != nil {
		return nil, fmt.Errorf("verdict cache entry: %w", err)
	}
	var v evaluation.Verdict
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("verdict cache decode: %w", err)
	}
	return &v, nil
}

// Set stores verdict under key with the cache TTL.
func (c *RedisVerdictCache) Set(ctx context.Context, key string, verdict *evaluation.Verdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("verdict cache encode: %w", err)
	}
	if err := c.client.Set(ctx, KeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("verdict cache set: %w", err)
	}
	return nil
}

// CachedJudge consults a VerdictCache before delegating to another judge.
// Cache failures are logged and otherwise ignored.
type CachedJudge struct {
	inner  evaluation.SemanticJudge
	cache  VerdictCache
	logger *slog.Logger
}

// NewCachedJudge wraps inner with cache.
func NewCachedJudge(inner evaluation.SemanticJudge, cache VerdictCache, logger *slog.Logger) *CachedJudge {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedJudge{
		inner:  inner,
		cache:  cache,
		logger: logger.With("component", "judge_cache"),
	}
}

// Available delegates to the wrapped judge.
func (j *CachedJudge) Available() bool {
	return j.inner != nil && j.inner.Available()
}

// Judge returns a cached verdict when present, otherwise asks the wrapped
// judge and stores a recognized verdict.
func (j *CachedJudge) Judge(ctx context.Context, req evaluation.JudgeRequest) (*evaluation.Verdict, error) {
	key := CacheKey(req)

	cached, err := j.cache.Get(ctx, key)
	switch {
	case err == nil:
		j.logger.DebugContext(ctx, "verdict cache hit", "key", key)
		return cached, nil
	case !errors.Is(err, ErrCacheMiss):
		j.logger.WarnContext(ctx, "verdict cache read failed", "error", redact.Error(err))
	}

	verdict, err := j.inner.Judge(ctx, req)
	if err != nil {
		return nil, err
	}
	if verdict == nil {
		return nil, nil
	}
	if _, ok := verdict.Result.Score(); !ok {
		return verdict, nil
	}

	if err := j.cache.Set(ctx, key, verdict); err != nil {
		j.logger.WarnContext(ctx, "verdict cache write failed", "error", redact.Error(err))
	}
	return verdict, nil
}

// CacheKey is the SHA-256 of the normalized request. Expected answers keep
// their order.
func CacheKey(req evaluation.JudgeRequest) string {
	parts := make([]string, 0, len(req.ExpectedAnswers)+2)
	parts = append(parts, evaluation.Normalize(req.Response), evaluation.Normalize(req.CardContext))
	for _, a := range req.ExpectedAnswers {
		parts = append(parts, evaluation.Normalize(a))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}
