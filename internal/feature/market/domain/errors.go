// Package domain defines domain-level errors for the market feature.
package domain

import "errors"

// Domain errors for market data operations.
// Callers match them with errors.Is; the concrete value is always a *FetchError.
var (
	// ErrNetwork indicates the provider could not be reached or answered with a non-2xx status.
	ErrNetwork = errors.New("network error")

	// ErrTimeout indicates the per-call deadline expired.
	ErrTimeout = errors.New("request timeout")

	// ErrProvider indicates the provider rejected the call (e.g. an unknown function or symbol).
	ErrProvider = errors.New("provider error")

	// ErrRateLimited indicates the provider throttled the call.
	// A rate-limited error also matches ErrProvider.
	ErrRateLimited = errors.New("provider rate limit reached")

	// ErrMalformedResponse indicates the payload could not be interpreted.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// FetchError describes a failed market data fetch.
type FetchError struct {
	Op      string // Operation that failed (e.g. "FetchMovers")
	Kind    error  // One of the sentinel errors above
	Status  int    // HTTP-like status reported by the transport, 500 when none
	Message string // Human readable message
	Err     error  // Underlying cause, if any
}

// Error returns the human readable message.
func (e *FetchError) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel and the underlying cause to errors.Is / errors.As.
func (e *FetchError) Unwrap() []error {
	errs := make([]error, 0, 3)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
		if e.Kind == ErrRateLimited {
			errs = append(errs, ErrProvider)
		}
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
