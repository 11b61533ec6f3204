package auth

import (
	"net/http"
	"time"

	"codeberg.org/leetbuddy/server/internal/auth"
	"github.com/markbates/goth"
)

// finishes the provider handshake; gothic.CompleteUserAuth outside tests
type UserAuthCompleter func(w http.ResponseWriter, r *http.Request) (goth.User, error)

// signs the caller out of the provider session; gothic.Logout outside tests
type LogoutFunc func(w http.ResponseWriter, r *http.Request) error

// UserResponse wraps the decoded token claims of the caller
type UserResponse struct {
	User    *auth.Claims  `json:"user"`
	Profile *callbackUser `json:"profile,omitempty"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse for the auth subsystem liveness check
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// public identity fields handed to the extension after login
type callbackUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// message posted to the opener window
type callbackPayload struct {
	Type  string       `json:"type"`
	Token string       `json:"token"`
	User  callbackUser `json:"user"`
}

type callbackPage struct {
	Payload     callbackPayload
	FrontendURL string
}
