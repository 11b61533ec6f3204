package comparisons

import (
	"math/rand/v2"
	"sync"
	"time"

	"codeberg.org/leetbuddy/server/internal/leetcode"
)

// ranking used for the winner decision when a profile has none
const MissingRankingSentinel = 999999

// outcome of comparing two profiles by total solved count
type Result struct {
	User1      *leetcode.Stats `json:"user1"`
	User2      *leetcode.Stats `json:"user2"`
	Winner     string          `json:"winner"`
	Difference int             `json:"difference"`
}

// Result plus who asked and when, as returned by POST /api/compare
type Report struct {
	*Result
	ComparedBy string    `json:"comparedBy,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// one scored metric for both sides
type Metric struct {
	User1  int    `json:"user1"`
	User2  int    `json:"user2"`
	Winner string `json:"winner"`
}

type Metrics struct {
	TotalSolved    Metric `json:"totalSolved"`
	Streak         Metric `json:"streak"`
	AcceptanceRate Metric `json:"acceptanceRate"`
	Ranking        Metric `json:"ranking"`
}

// one difficulty bucket for both sides
type CategoryCount struct {
	User1 int `json:"user1"`
	User2 int `json:"user2"`
}

type Categories struct {
	Easy   CategoryCount `json:"easy"`
	Medium CategoryCount `json:"medium"`
	Hard   CategoryCount `json:"hard"`
}

// one month of the synthetic activity series
type MonthlyPoint struct {
	Month string `json:"month"`
	User1 int    `json:"user1"`
	User2 int    `json:"user2"`
}

type ChartData struct {
	Monthly    []MonthlyPoint `json:"monthly"`
	Categories Categories     `json:"categories"`
	Comparison Metrics        `json:"comparison"`
	// the monthly series is generated placeholder data, not real activity
	Synthetic bool `json:"synthetic"`
}

// combines the fetcher with the comparison rules
type Service struct {
	fetcher leetcode.Fetcher
	now     func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}
