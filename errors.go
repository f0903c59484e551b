package remotedata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by errors returned when Success or Failure
	// receive a nil payload.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvariantViolation is matched by errors raised when a value carries a
	// kind outside the closed set. It signals a malformed value, not a
	// recoverable condition.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrIncompleteMatcher is returned when a complete matcher lacks a handler.
	ErrIncompleteMatcher = errors.New("complete matcher is missing handlers")

	// ErrMissingFallback is returned when a partial matcher has no fallback.
	ErrMissingFallback = errors.New("partial matcher requires a fallback")
)

// ArgumentError reports a required constructor parameter that was nil.
type ArgumentError struct {
	Param string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Parameter %q is required", e.Param)
}

// Is reports whether target is ErrInvalidArgument.
func (*ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvariantError carries a value whose kind is not one of the known kinds.
type InvariantError struct {
	Value any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("unknown RemoteData state: %v", e.Value)
}

// Is reports whether target is ErrInvariantViolation.
func (*InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}
