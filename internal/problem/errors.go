package problem

import "errors"

var (
	// ErrMissingFields reports a request with a required input absent.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidConfiguration reports a difficulty or problem type
	// outside the closed enumeration. Unknown values are rejected, never
	// silently defaulted.
	ErrInvalidConfiguration = errors.New("invalid problem configuration")

	// ErrInvalidAIResponse reports structured model output that cannot
	// be used: unparseable JSON, a missing required field, or a field of
	// the wrong type. Nothing is persisted when this occurs.
	ErrInvalidAIResponse = errors.New("invalid AI response")

	// ErrPersistence reports a rejected store write. Writes are never
	// retried; the failure surfaces to the caller as-is.
	ErrPersistence = errors.New("persistence error")
)
