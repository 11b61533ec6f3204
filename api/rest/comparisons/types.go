package comparisons

import (
	"time"

	"codeberg.org/leetbuddy/server/leetbuddy/comparisons"
)

// CompareRequest names the two profiles to compare
type CompareRequest struct {
	Username1 string `json:"username1"`
	Username2 string `json:"username2"`
}

// ChartResponse wraps the chart payload with the requested usernames
type ChartResponse struct {
	User1     string                 `json:"user1"`
	User2     string                 `json:"user2"`
	Data      *comparisons.ChartData `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}
