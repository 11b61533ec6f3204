package main

import (
	"context"
	"fmt"

	"codeberg.org/leetbuddy/server/internal/config"
	"codeberg.org/leetbuddy/server/internal/logger"
	"codeberg.org/leetbuddy/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	backends, err := InitializeBackends(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backends: %w", err)
	}

	services := InitializeServices(cfg, backends)

	limitConfig := ratelimit.DefaultConfig()
	limitConfig.Rate = cfg.RateLimit

	rateLimiter, err := ratelimit.New(limitConfig, backends.Redis)
	if err != nil {
		backends.Close()
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	logger.Info("rate limiter initialized",
		"rate", limitConfig.Rate,
		"shared", backends.Redis != nil,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())

	server := &Server{
		config:   cfg,
		router:   router,
		services: services,
		backends: backends,
	}

	RegisterRoutes(router, server, rateLimiter)

	return server, nil
}
