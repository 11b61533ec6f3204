package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "name", "avatar_url", "provider", "provider_id", "created_at"}

func newMockRepo(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewPostgresRepository(mock), mock
}

func TestPostgresRepository_FindOrCreateByProvider(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "google", "sub-1", "alice@example.com", "Alice", "https://img/a.png").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-1", "alice@example.com", "Alice", "https://img/a.png", "google", "sub-1", createdAt))

	user, err := repo.FindOrCreateByProvider(context.Background(), "google", "sub-1", "alice@example.com", "Alice", "https://img/a.png")

	require.NoError(t, err)
	assert.Equal(t, &User{
		ID:         "user-1",
		Email:      "alice@example.com",
		Name:       "Alice",
		AvatarURL:  "https://img/a.png",
		Provider:   "google",
		ProviderID: "sub-1",
		CreatedAt:  createdAt,
	}, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindOrCreateDefaultsName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "google", "sub-2", "anon@example.com", defaultName, "").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-2", "anon@example.com", defaultName, "", "google", "sub-2", time.Now()))

	user, err := repo.FindOrCreateByProvider(context.Background(), "google", "sub-2", "anon@example.com", "", "")

	require.NoError(t, err)
	assert.Equal(t, defaultName, user.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindOrCreateRequiresEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	_, err := repo.FindOrCreateByProvider(context.Background(), "google", "sub-1", "", "Alice", "")

	assert.ErrorIs(t, err, ErrMissingEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindOrCreateDatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "google", "sub-1", "alice@example.com", "Alice", "").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindOrCreateByProvider(context.Background(), "google", "sub-1", "alice@example.com", "Alice", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert user")
}

func TestPostgresRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, email, name, avatar_url, provider, provider_id, created_at\s+FROM users\s+WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-1", "alice@example.com", "Alice", "", "google", "sub-1", time.Now()))

	user, err := repo.FindByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	mock.ExpectQuery(`WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE email = \$1`).
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("user-1", "alice@example.com", "Alice", "", "google", "sub-1", time.Now()))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	mock.ExpectQuery(`WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
