package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/leetbuddy/server/api/rest/health"
	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/internal/config"
	"codeberg.org/leetbuddy/server/internal/leetcode"
	"codeberg.org/leetbuddy/server/internal/logger"
	"codeberg.org/leetbuddy/server/internal/migrate"
	"codeberg.org/leetbuddy/server/leetbuddy/comparisons"
	"codeberg.org/leetbuddy/server/leetbuddy/history"
	"codeberg.org/leetbuddy/server/leetbuddy/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const backendConnectTimeout = 10 * time.Second

// connects to redis and postgres when configured. either may be absent,
// in which case the matching store falls back to process memory.
func InitializeBackends(ctx context.Context, cfg *config.Config) (*Backends, error) {
	ctx, cancel := context.WithTimeout(ctx, backendConnectTimeout)
	defer cancel()

	backends := &Backends{}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}

		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}

		backends.Redis = client
	}

	if cfg.DatabaseURL != "" {
		if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
			backends.Close()
			return nil, err
		}

		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			backends.Close()
			return nil, fmt.Errorf("failed to parse database config: %w", err)
		}

		// identity lookups happen once per login, a small pool is plenty
		poolConfig.MaxConns = 5
		poolConfig.MinConns = 1
		poolConfig.MaxConnLifetime = 30 * time.Minute
		poolConfig.MaxConnIdleTime = 5 * time.Minute
		poolConfig.HealthCheckPeriod = time.Minute

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			backends.Close()
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			backends.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		backends.Postgres = pool
	}

	return backends, nil
}

// creates the domain services on top of the configured backends
func InitializeServices(cfg *config.Config, backends *Backends) *Services {
	fetcher := leetcode.NewClient(leetcode.Config{
		BaseURL:       cfg.LeetCodeAPIURL,
		Timeout:       cfg.LeetCodeTimeout,
		MaxRetries:    cfg.LeetCodeMaxRetries,
		RatePerSecond: cfg.LeetCodeRatePerSecond,
	})

	var historyStore history.Store = history.NewMemoryStore()
	if backends.Redis != nil {
		historyStore = history.NewRedisStore(backends.Redis)
	}

	var userRepo users.Repository = users.NewMemoryRepository()
	if backends.Postgres != nil {
		userRepo = users.NewPostgresRepository(backends.Postgres)
	}

	logger.Info("services initialized",
		"history_backend", backendName(backends.Redis != nil, "redis"),
		"identity_backend", backendName(backends.Postgres != nil, "postgres"),
		"upstream", cfg.LeetCodeAPIURL,
	)

	return &Services{
		Fetcher:     fetcher,
		Comparisons: comparisons.NewService(fetcher),
		Tokens:      auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration),
		History:     historyStore,
		Users:       userRepo,
	}
}

// returns health probes for every configured backend
func (b *Backends) Probes() []health.Probe {
	var probes []health.Probe

	if b.Redis != nil {
		probes = append(probes, health.Probe{
			Name: "redis",
			Ping: func(ctx context.Context) error { return b.Redis.Ping(ctx).Err() },
		})
	}

	if b.Postgres != nil {
		probes = append(probes, health.Probe{
			Name: "postgres",
			Ping: b.Postgres.Ping,
		})
	}

	return probes
}

// closes every open connection
func (b *Backends) Close() {
	if b.Redis != nil {
		b.Redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if b.Postgres != nil {
		b.Postgres.Close()
	}
}

func backendName(enabled bool, name string) string {
	if enabled {
		return name
	}
	return "memory"
}
