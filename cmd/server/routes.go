package main

import (
	"codeberg.org/leetbuddy/server/api/rest/auth"
	"codeberg.org/leetbuddy/server/api/rest/comparisons"
	"codeberg.org/leetbuddy/server/api/rest/health"
	"codeberg.org/leetbuddy/server/api/rest/history"
	"codeberg.org/leetbuddy/server/api/rest/profiles"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server, rateLimiter gin.HandlerFunc) {
	router.Use(CORSMiddleware(server.config.AllowedOrigins))
	// health checks are exempted inside the limiter
	router.Use(rateLimiter)

	router.GET("/health", health.Handler(version, server.backends.Probes()...))

	auth.RegisterRoutes(router, server.services.Users, server.services.Tokens, server.config.FrontendURL)

	api := router.Group("/api")
	{
		profiles.RegisterRoutes(api, server.services.Fetcher)
		comparisons.RegisterRoutes(api, server.services.Comparisons, server.services.Tokens)
		history.RegisterRoutes(api, server.services.History, server.services.Tokens)
	}
}

// allows the extension and frontend origins to call the API with a bearer token
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}

	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
		// browser extensions call from chrome-extension:// origins
		cfg.AllowBrowserExtensions = true
	}

	return cors.New(cfg)
}
