package main

import (
	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/internal/config"
	"codeberg.org/leetbuddy/server/internal/leetcode"
	"codeberg.org/leetbuddy/server/leetbuddy/comparisons"
	"codeberg.org/leetbuddy/server/leetbuddy/history"
	"codeberg.org/leetbuddy/server/leetbuddy/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	router   *gin.Engine
	services *Services
	backends *Backends
}

// holds the domain services handlers are built from
type Services struct {
	Fetcher     leetcode.Fetcher
	Comparisons *comparisons.Service
	Tokens      *auth.TokenService
	History     history.Store
	Users       users.Repository
}

// holds optional external connections; nil fields mean the in-memory backend is used
type Backends struct {
	Redis    *redis.Client
	Postgres *pgxpool.Pool
}
