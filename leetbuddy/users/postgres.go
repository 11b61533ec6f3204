package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// creates a new Postgres user repository
func NewPostgresRepository(db Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// finds a user by OAuth provider or creates a new one
func (r *PostgresRepository) FindOrCreateByProvider(
	ctx context.Context,
	provider, providerID, email, name, avatarURL string,
) (*User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	if name == "" {
		name = defaultName
	}

	row := r.db.QueryRow(
		ctx,
		queryFindOrCreateByProvider,
		uuid.NewString(),
		provider,
		providerID,
		email,
		name,
		avatarURL,
	)

	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// finds a user by their ID
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByID, id))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// finds the first user registered with this email
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByEmail, email))
	if err != nil {
		return nil, err
	}

	return user, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		&user.Provider,
		&user.ProviderID,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}
