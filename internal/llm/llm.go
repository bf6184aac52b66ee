package llm

import (
	"context"
	"fmt"
)

// Client is a minimal text-generation interface to allow pluggable providers.
type Client interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// APIError is a service-level error reported by the provider's API, as
// opposed to a transport or decoding failure. Callers can pick it out
// with errors.As.
type APIError struct {
	StatusCode int
	Status     string // provider status label, e.g. "RESOURCE_EXHAUSTED"
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
