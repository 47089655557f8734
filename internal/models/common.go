package models

// ErrorResponse is the body of every non-2xx response.
// Details holds a string for bad input and a list of messages for constraint violations.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
