package auth

import (
	"strings"

	"codeberg.org/leetbuddy/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// returns the token part of an "Authorization: Bearer <token>" header.
// only the second space-separated field is used, the scheme itself is not checked.
func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) < 2 {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// rejects requests without a valid bearer token.
// no token -> 401, bad token -> 403.
func AuthMiddleware(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			errors.Unauthorized(c, "Access token required")
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			errors.Forbidden(c, "Invalid or expired token")
			return
		}

		bindClaims(c, claims)
		c.Next()
	}
}

// validates JWT if present but doesn't require it
func OptionalAuthMiddleware(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := tokens.Validate(token); err == nil {
				bindClaims(c, claims)
			}
		}

		c.Next()
	}
}

func bindClaims(c *gin.Context, claims *Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserEmail, claims.Email)
	c.Set(ContextClaims, claims)
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserID)
	return userID, userID != ""
}

// extracts the caller's email; empty when anonymous
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

// extracts the decoded token claims bound by either middleware
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	claims, ok := v.(*Claims)
	return claims, ok
}
