// Package types contains the response shapes served by the hint service.
package types

// Fixed payload values.
const (
	StatusOK    = "ok"
	DefaultHint = "Consider sticking at 18."
)

// HealthStatus is the body of GET /healthz.
type HealthStatus struct {
	Status string `json:"status"`
}

// Hint is the body of GET /ai/hint.
type Hint struct {
	Hint string `json:"hint"`
}

// NewHealthStatus returns a fresh healthy status.
func NewHealthStatus() HealthStatus {
	return HealthStatus{Status: StatusOK}
}

// NewHint returns a fresh copy of the canned hint.
func NewHint() Hint {
	return Hint{Hint: DefaultHint}
}
