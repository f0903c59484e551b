package remotedata

import "fmt"

// Kind is the discriminant of a RemoteData value.
type Kind int32

const (
	// KindInitialized indicates no request has been issued yet.
	// It is the zero Kind, so the zero RemoteData is Initialized.
	KindInitialized Kind = iota

	// KindPending indicates a request is in flight.
	KindPending

	// KindFailure indicates the request failed. The value carries an error payload.
	KindFailure

	// KindSuccess indicates the request succeeded. The value carries a data payload.
	KindSuccess
)

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindInitialized, KindPending, KindFailure, KindSuccess:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInitialized:
		return "Initialized"
	case KindPending:
		return "Pending"
	case KindFailure:
		return "Failure"
	case KindSuccess:
		return "Success"
	default:
		return fmt.Sprintf("unknown(%d)", int32(k))
	}
}
