package errors

// ErrorResponse is the JSON envelope for every failed request
type ErrorResponse struct {
	Error string `json:"error"` // user-facing message
	Code  string `json:"code"`  // machine readable code (e.g. "unauthorized")
}
