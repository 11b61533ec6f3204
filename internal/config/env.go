package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	devJWTSecret     = "dev-jwt-secret-change-me"
	devSessionSecret = "dev-session-secret-change-me"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	environment := envOr("ENVIRONMENT", "development")
	isProduction := environment == "production"

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if isProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		jwtSecret = devJWTSecret
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		if isProduction {
			return nil, fmt.Errorf("SESSION_SECRET must be set in production")
		}
		sessionSecret = devSessionSecret
	}

	jwtExpiration, err := ParseExpiration(envOr("JWT_EXPIRATION", "7d"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}

	leetcodeAPIURL := strings.TrimRight(os.Getenv("LEETCODE_API_URL"), "/")
	if leetcodeAPIURL == "" {
		return nil, fmt.Errorf("LEETCODE_API_URL environment variable is required")
	}

	leetcodeTimeout, err := time.ParseDuration(envOr("LEETCODE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEETCODE_TIMEOUT: %w", err)
	}

	port := envOr("PORT", "3001")
	baseURL := envOr("BASE_URL", "http://localhost:"+port)

	return &Config{
		Port:                  port,
		Environment:           environment,
		BaseURL:               strings.TrimRight(baseURL, "/"),
		FrontendURL:           envOr("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:             jwtSecret,
		JWTExpiration:         jwtExpiration,
		SessionSecret:         sessionSecret,
		GoogleClientID:        os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:    os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:     envOr("GOOGLE_CALLBACK_URL", baseURL+"/auth/google/callback"),
		GitHubClientID:        os.Getenv("GITHUB_CLIENT_ID"),
		GitHubClientSecret:    os.Getenv("GITHUB_CLIENT_SECRET"),
		LeetCodeAPIURL:        leetcodeAPIURL,
		LeetCodeTimeout:       leetcodeTimeout,
		LeetCodeMaxRetries:    envIntOr("LEETCODE_MAX_RETRIES", 2),
		LeetCodeRatePerSecond: envFloatOr("LEETCODE_RATE_PER_SECOND", 10),
		RedisURL:              os.Getenv("REDIS_URL"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RateLimit:             envOr("RATE_LIMIT", "60-M"),
		AllowedOrigins:        splitList(envOr("ALLOWED_ORIGINS", "*")),
	}, nil
}

// parses a token lifetime such as "7d", "12h" or "30m"
func ParseExpiration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}

	if d <= 0 {
		return 0, fmt.Errorf("expiration must be positive, got %q", value)
	}

	return d, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
