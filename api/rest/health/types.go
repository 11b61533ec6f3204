package health

import "context"

// Response represents the health check response
type Response struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// a named backend dependency the server can ping
type Probe struct {
	Name string
	Ping func(ctx context.Context) error
}
