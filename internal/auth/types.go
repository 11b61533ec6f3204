package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// returned for any token that fails verification; the cause is never exposed
var ErrInvalidToken = errors.New("invalid or expired token")

// represents JWT claims
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// signs and verifies bearer tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// gin context keys set by the middlewares
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextClaims    = "auth_claims"
)

// OAuth provider settings
type ProviderConfig struct {
	SessionSecret      string
	BaseURL            string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	GitHubClientID     string
	GitHubClientSecret string
}
