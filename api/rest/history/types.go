package history

import "codeberg.org/leetbuddy/server/leetbuddy/history"

// SaveRequest names the two profiles of a comparison to remember
type SaveRequest struct {
	User1 string `json:"user1"`
	User2 string `json:"user2"`
}

// ListResponse wraps the caller's history, newest first
type ListResponse struct {
	History []history.Comparison `json:"history"`
}

// SaveResponse returns the stored comparison
type SaveResponse struct {
	Message    string              `json:"message"`
	Comparison *history.Comparison `json:"comparison"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
