package users

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrMissingEmail = errors.New("no email found in provider profile")
)

// display name used when the provider sends none
const defaultName = "User"

// an internal principal bound to one external OAuth subject
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  string    `json:"picture,omitempty"`
	Provider   string    `json:"-"`
	ProviderID string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// identity storage; lookups by provider subject only happen at login
type Repository interface {
	// returns the user bound to (provider, providerID), creating it on first login
	FindOrCreateByProvider(ctx context.Context, provider, providerID, email, name, avatarURL string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// in-memory Repository; data lives as long as the process
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*User
	byProvider map[string]string
	now        func() time.Time
	newID      func() string
}

// the subset of *pgxpool.Pool used by PostgresRepository; pgxmock implements it too
type Pool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres-backed Repository
type PostgresRepository struct {
	db Pool
}
