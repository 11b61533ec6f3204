package leetcode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	// upstream transport failure, non-2xx status or unreadable body
	ErrUpstream = errors.New("upstream profile API failed")

	// upstream answered but has no user with that name
	ErrNotFound = errors.New("user not found")
)

// fetches one canonical profile per username
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (*Stats, error)
}

// canonical per-profile metrics derived from one upstream fetch
type Stats struct {
	Username       string `json:"username"`
	Solved         int    `json:"solved"`
	Streak         int    `json:"streak"` // upstream has no streak, always 0
	AcceptanceRate int    `json:"acceptanceRate"`
	Easy           int    `json:"easy"`
	Medium         int    `json:"medium"`
	Hard           int    `json:"hard"`
	Ranking        int    `json:"ranking,omitempty"` // 0 when upstream omits it
}

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	MaxRetries    int
	RatePerSecond float64
	Burst         int
	RetryBase     time.Duration
}

// talks to the external LeetCode profile API
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

type profileRequest struct {
	Username string `json:"username"`
}

// every field is optional; defaults are applied in toStats
type profileResponse struct {
	MatchedUser *matchedUser `json:"matchedUser"`
}

type matchedUser struct {
	Username          *string      `json:"username"`
	Profile           *userProfile `json:"profile"`
	SubmitStatsGlobal *submitStats `json:"submitStatsGlobal"`
}

type userProfile struct {
	Ranking *int `json:"ranking"`
}

type submitStats struct {
	AcSubmissionNum []difficultyCount `json:"acSubmissionNum"`
}

type difficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      *int   `json:"count"`
}
