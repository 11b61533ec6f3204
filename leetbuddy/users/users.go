package users

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ensure both backends satisfy the interface
var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
)

// creates an empty in-memory user repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[string]*User),
		byProvider: make(map[string]string),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// finds a user by OAuth provider or creates a new one
func (r *MemoryRepository) FindOrCreateByProvider(
	_ context.Context,
	provider, providerID, email, name, avatarURL string,
) (*User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	key := provider + ":" + providerID

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, exists := r.byProvider[key]; exists {
		user := *r.byID[id]
		return &user, nil
	}

	if name == "" {
		name = defaultName
	}

	user := &User{
		ID:         r.newID(),
		Email:      email,
		Name:       name,
		AvatarURL:  avatarURL,
		Provider:   provider,
		ProviderID: providerID,
		CreatedAt:  r.now().UTC(),
	}

	r.byID[user.ID] = user
	r.byProvider[key] = user.ID

	created := *user
	return &created, nil
}

// finds a user by their ID
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return nil, ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// finds the first user registered with this email
func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *User
	for _, user := range r.byID {
		if user.Email != email {
			continue
		}

		if match == nil || user.CreatedAt.Before(match.CreatedAt) {
			match = user
		}
	}

	if match == nil {
		return nil, ErrUserNotFound
	}

	found := *match
	return &found, nil
}
