package ratelimit

// holds per-client request limiting configuration
type Config struct {
	// limiter formatted rate, e.g. "60-M" or "1000-H"
	Rate string

	// key prefix when backed by redis
	Prefix string

	// paths that bypass limiting (prefix match)
	ExemptPaths []string
}
