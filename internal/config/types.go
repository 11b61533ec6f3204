package config

import "time"

type Config struct {
	Port        string
	Environment string
	BaseURL     string
	FrontendURL string

	JWTSecret     string
	JWTExpiration time.Duration
	SessionSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	GitHubClientID     string
	GitHubClientSecret string

	LeetCodeAPIURL        string
	LeetCodeTimeout       time.Duration
	LeetCodeMaxRetries    int
	LeetCodeRatePerSecond float64

	RedisURL       string
	DatabaseURL    string
	RateLimit      string
	AllowedOrigins []string
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
