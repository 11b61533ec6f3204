package ratelimit

import (
	"fmt"
	"strings"

	"codeberg.org/leetbuddy/server/internal/errors"
	"codeberg.org/leetbuddy/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const defaultPrefix = "leetbuddy:ratelimit"

// returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rate:        "60-M",
		Prefix:      defaultPrefix,
		ExemptPaths: []string{"/health", "/auth/health"},
	}
}

// builds a per-client-IP limiting middleware. counters live in redis when a
// client is given so limits hold across replicas, otherwise in process memory.
func New(cfg Config, client *redis.Client) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.Rate, err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   prefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	middleware := mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(storeFailed),
	)

	return func(c *gin.Context) {
		if isExempt(cfg.ExemptPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		middleware(c)
	}, nil
}

func limitReached(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "ip", c.ClientIP())
	errors.TooManyRequests(c, "too many requests, please slow down")
}

// a broken counter store must not take the API down with it
func storeFailed(c *gin.Context, err error) {
	logger.ErrorErr(err, "rate limiter store failed", "ip", c.ClientIP())
	c.Next()
}

func isExempt(paths []string, path string) bool {
	for _, p := range paths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
