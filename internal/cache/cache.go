// Package cache stores computed HTTP responses keyed by a hash of the
// endpoint and request body. Engine results depend only on their input, so a
// cached response is valid until its TTL expires.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/iwvelando/mortgage-engine/internal/config"
	"github.com/iwvelando/mortgage-engine/pkg/constants"
	"go.uber.org/zap"
)

// KeyPrefix namespaces every key written by this package.
const KeyPrefix = "mortgage-engine:"

// Cache is a byte store with a fixed time to live.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// New builds the cache selected by cfg. It returns a nil Cache when caching
// is disabled.
func New(cfg config.CacheConfig, logger *zap.Logger) (Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case constants.CacheBackendNone, "":
		return nil, nil
	case constants.CacheBackendMemory:
		logger.Info("using in-memory response cache",
			zap.String("op", "cache.New"),
			zap.Duration("ttl", cfg.TTL),
		)
		return NewMemoryCache(cfg.TTL), nil
	case constants.CacheBackendRedis:
		logger.Info("using redis response cache",
			zap.String("op", "cache.New"),
			zap.String("address", cfg.RedisAddress),
			zap.Duration("ttl", cfg.TTL),
		)
		return NewRedisCache(cfg.RedisAddress, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

// Key derives the cache key of a request to endpoint with the given body.
func Key(endpoint string, body []byte) string {
	d := xxhash.New()
	_, _ = d.WriteString(endpoint)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(body)
	return fmt.Sprintf("%s%s:%016x", KeyPrefix, endpoint, d.Sum64())
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}
