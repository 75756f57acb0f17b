package domain

import (
	"errors"
	"fmt"
)

// ErrNoCatalog is returned when a planner is constructed without a
// candidate catalog.
var ErrNoCatalog = errors.New("no catalog configured")

// ValidationError marks a malformed trip request. It is fatal to the run
// (the state machine routes it to the error stage) but never to the process.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// IsValidationError reports whether err is a request validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RetryableError wraps a composer failure that is transient and may
// succeed on retry (timeouts, rate limits, transport faults).
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether an error is marked transient.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}
