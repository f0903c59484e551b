package remotedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance.
var validate = validator.New()

// MatchMode tags a Matcher as complete or partial.
type MatchMode int

const (
	// MatchComplete requires a handler for every kind and has no fallback.
	MatchComplete MatchMode = iota + 1

	// MatchPartial accepts any subset of handlers plus a mandatory fallback.
	MatchPartial
)

// String returns the string representation of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchComplete:
		return "complete"
	case MatchPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Cases holds one handler per kind. Failure receives the stored error and
// Success the stored data.
type Cases[E, D, T any] struct {
	Initialized func() T  `validate:"required"`
	Pending     func() T  `validate:"required"`
	Failure     func(E) T `validate:"required"`
	Success     func(D) T `validate:"required"`
}

// Matcher is a handler set for Match, built with Complete or Partial.
// The zero Matcher is invalid.
type Matcher[E, D, T any] struct {
	mode     MatchMode
	cases    Cases[E, D, T]
	fallback func() T
}

// Complete returns a matcher that requires all four handlers in cases.
func Complete[E, D, T any](cases Cases[E, D, T]) Matcher[E, D, T] {
	return Matcher[E, D, T]{mode: MatchComplete, cases: cases}
}

// Partial returns a matcher that calls the handler in cases for the value's
// kind when one is set, and fallback otherwise. fallback is required.
func Partial[E, D, T any](fallback func() T, cases Cases[E, D, T]) Matcher[E, D, T] {
	return Matcher[E, D, T]{mode: MatchPartial, cases: cases, fallback: fallback}
}

// Mode returns whether the matcher is complete or partial.
func (m Matcher[E, D, T]) Mode() MatchMode {
	return m.mode
}

// Validate reports a complete matcher with missing handlers as
// ErrIncompleteMatcher, naming the missing cases, and a partial matcher
// without a fallback as ErrMissingFallback.
func (m Matcher[E, D, T]) Validate() error {
	switch m.mode {
	case MatchComplete:
		err := validate.Struct(m.cases)
		if err == nil {
			return nil
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return fmt.Errorf("%w: %s", ErrIncompleteMatcher, strings.Join(missing, ", "))
	case MatchPartial:
		if err := validate.Var(m.fallback, "required"); err != nil {
			return ErrMissingFallback
		}
		return nil
	default:
		return fmt.Errorf("%w: matcher was not built with Complete or Partial", ErrIncompleteMatcher)
	}
}

// Match calls exactly one handler of m for rd and returns its result.
//
// The matcher is validated first and no handler runs if it is invalid. A
// complete matcher calls the handler for rd's kind. A partial matcher calls
// the handler for rd's kind if set, and its fallback with no arguments
// otherwise. A value with an unknown kind yields an *InvariantError for either
// mode; the fallback never absorbs it.
func Match[E, D, T any](rd RemoteData[E, D], m Matcher[E, D, T]) (T, error) {
	var zero T
	if err := m.Validate(); err != nil {
		return zero, err
	}

	c := m.cases
	switch rd.kind {
	case KindInitialized:
		if c.Initialized != nil {
			return c.Initialized(), nil
		}
	case KindPending:
		if c.Pending != nil {
			return c.Pending(), nil
		}
	case KindFailure:
		if c.Failure != nil {
			return c.Failure(rd.err), nil
		}
	case KindSuccess:
		if c.Success != nil {
			return c.Success(rd.data), nil
		}
	default:
		return zero, &InvariantError{Value: rd}
	}

	return m.fallback(), nil
}
