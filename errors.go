package solvent

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation before send.
	ErrValidation = errors.New("validation error")

	// ErrTimeout indicates an exchange exceeded its wall-clock budget.
	// Distinguished from generic transport failures in user-visible
	// reporting; never retried automatically.
	ErrTimeout = errors.New("request timed out")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")
)
