package users

const (
	// existing rows are returned untouched; DO UPDATE on a no-op column makes RETURNING work
	queryFindOrCreateByProvider = `
		INSERT INTO users (id, provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET provider = EXCLUDED.provider
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at
	`

	queryFindByID = `
		SELECT id, email, name, avatar_url, provider, provider_id, created_at
		FROM users
		WHERE id = $1
	`

	queryFindByEmail = `
		SELECT id, email, name, avatar_url, provider, provider_id, created_at
		FROM users
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`
)
