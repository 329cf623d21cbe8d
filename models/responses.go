package models

import "encoding/json"

// ConfigResponse is the success body of GET /admin/config.
type ConfigResponse struct {
	Config json.RawMessage `json:"config"`
}

// UpdateConfigResponse is the success body of PUT /admin/config.
// Committed reports whether the document was pushed to the remote
// repository in addition to (or instead of) local disk.
type UpdateConfigResponse struct {
	OK        bool `json:"ok"`
	Committed bool `json:"committed"`
}

// ErrorResponse is the generic error body used for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
