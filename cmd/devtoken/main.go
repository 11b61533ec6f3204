package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/internal/config"
	"codeberg.org/leetbuddy/server/internal/logger"
	"codeberg.org/leetbuddy/server/internal/migrate"
	"codeberg.org/leetbuddy/server/leetbuddy/users"
	"github.com/jackc/pgx/v5/pgxpool"
)

const devProvider = "dev"

// mints a bearer token for a local test identity so the protected
// endpoints can be exercised without going through Google sign-in
func main() {
	email := flag.String("email", "test@leetbuddy.dev", "email of the test identity")
	name := flag.String("name", "Test User", "display name of the test identity")
	subject := flag.String("subject", "test-user-123", "provider subject of the test identity")
	flag.Parse()

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	if cfg.IsProduction() {
		logger.Fatal("refusing to mint development tokens in production")
	}

	ctx := context.Background()

	repo, closeRepo, err := openRepository(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open identity store", "error", err)
	}
	defer closeRepo()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)

	if err := run(ctx, os.Stdout, repo, tokens, *subject, *email, *name); err != nil {
		logger.Fatal("failed to mint token", "error", err)
	}
}

// prints a token for the identity already registered under email, such as a
// real google sign-in, and otherwise creates a dev identity for it
func run(ctx context.Context, out io.Writer, repo users.Repository, tokens *auth.TokenService, subject, email, name string) error {
	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		user, err = repo.FindOrCreateByProvider(ctx, devProvider, subject, email, name, "")
		if err != nil {
			return fmt.Errorf("failed to resolve test identity: %w", err)
		}
	}

	token, err := tokens.Generate(user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	//nolint:errcheck,gosec // best-effort CLI output
	fmt.Fprintf(out, "user: %s (%s)\n\nexport TEST_TOKEN=%q\n\ncurl -H \"Authorization: Bearer $TEST_TOKEN\" http://localhost:3001/api/history\n",
		user.Email, user.ID, token)

	return nil
}

// without DATABASE_URL the identity only lives for this process, which is
// fine because tokens are stateless and the server trusts the claims
func openRepository(ctx context.Context, dsn string) (users.Repository, func(), error) {
	if dsn == "" {
		return users.NewMemoryRepository(), func() {}, nil
	}

	if err := migrate.Up(ctx, dsn); err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return users.NewPostgresRepository(pool), pool.Close, nil
}
