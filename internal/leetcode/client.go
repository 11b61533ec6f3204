package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/leetbuddy/server/internal/logger"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
)

const (
	profilePath       = "/api/leetcode/profile"
	defaultTimeout    = 10 * time.Second
	defaultRetryBase  = 200 * time.Millisecond
	defaultRatePerSec = 10
	defaultBurst      = 5
	maxErrorBodyBytes = 1024
)

// ensure Client implements the interface
var _ Fetcher = (*Client)(nil)

// creates a new upstream client
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	if config.RetryBase <= 0 {
		config.RetryBase = defaultRetryBase
	}

	if config.RatePerSecond <= 0 {
		config.RatePerSecond = defaultRatePerSec
	}

	if config.Burst <= 0 {
		config.Burst = defaultBurst
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(config.RatePerSecond), config.Burst),
	}
}

// fetches one profile and reshapes it into Stats.
// transport errors and 5xx responses are retried with exponential backoff;
// ErrNotFound and 4xx responses are returned immediately.
func (c *Client) FetchProfile(ctx context.Context, username string) (*Stats, error) {
	log := logger.FromContext(ctx).With("component", "leetcode", "username", username)

	backoff := retry.WithMaxRetries(uint64(c.config.MaxRetries), retry.NewExponential(c.config.RetryBase)) //nolint:gosec // MaxRetries is non-negative

	var stats *Stats
	attempt := 0

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %w", ErrUpstream, err)
		}

		start := time.Now()
		result, retryable, err := c.fetchOnce(ctx, username)

		if err != nil {
			log.Debug("profile fetch attempt failed",
				"attempt", attempt,
				"duration", time.Since(start),
				"retryable", retryable,
				"error", err,
			)

			if retryable {
				return retry.RetryableError(err)
			}
			return err
		}

		log.Debug("profile fetched", "attempt", attempt, "duration", time.Since(start))
		stats = result
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", username, err)
	}

	return stats, nil
}

// performs a single request; the bool reports whether a retry may help
func (c *Client) fetchOnce(ctx context.Context, username string) (*Stats, bool, error) {
	body, err := json.Marshal(profileRequest{Username: username})
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+profilePath, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to create request: %w", ErrUpstream, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// a cancelled caller is not worth retrying
		return nil, ctx.Err() == nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)) //nolint:errcheck // best-effort context
		return nil, resp.StatusCode >= 500, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(snippet))
	}

	var payload profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("%w: failed to decode response: %w", ErrUpstream, err)
	}

	stats, err := toStats(username, &payload)
	if err != nil {
		return nil, false, err
	}

	return stats, false, nil
}
