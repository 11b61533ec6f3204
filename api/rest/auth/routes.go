package auth

import (
	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/leetbuddy/users"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// registers all authentication routes
func RegisterRoutes(router gin.IRouter, userRepo users.Repository, tokens *auth.TokenService, frontendURL string) {
	authGroup := router.Group("/auth")
	{
		// static segments win over the :provider param
		authGroup.GET("/failure", FailureHandler)
		authGroup.GET("/health", HealthHandler)
		authGroup.GET("/user", auth.AuthMiddleware(tokens), GetCurrentUserHandler(userRepo))
		authGroup.POST("/logout", LogoutHandler(gothic.Logout))

		authGroup.GET("/:provider", BeginAuthHandler())
		authGroup.GET("/:provider/callback", CallbackHandler(gothic.CompleteUserAuth, userRepo, tokens, frontendURL))
	}
}
