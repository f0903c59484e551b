package remotedata

import (
	"fmt"
	"reflect"
)

// RemoteData is the state of an asynchronously loaded value: Initialized,
// Pending, Failure with an error of type E, or Success with data of type D.
//
// Values are immutable. The kind and payload are fixed at construction and a
// state change is expressed by constructing a new value. The zero value is
// Initialized.
type RemoteData[E, D any] struct {
	kind Kind
	err  E
	data D
}

// Initialized returns a value representing "no request issued yet".
func Initialized[E, D any]() RemoteData[E, D] {
	return RemoteData[E, D]{kind: KindInitialized}
}

// Pending returns a value representing "request in flight".
func Pending[E, D any]() RemoteData[E, D] {
	return RemoteData[E, D]{kind: KindPending}
}

// Success returns a value carrying data. A nil data (untyped nil, or a nil
// pointer, map, slice, channel, func or interface) is rejected with an
// *ArgumentError matching ErrInvalidArgument.
func Success[E, D any](data D) (RemoteData[E, D], error) {
	if isNil(data) {
		return RemoteData[E, D]{}, &ArgumentError{Param: "data"}
	}
	return RemoteData[E, D]{kind: KindSuccess, data: data}, nil
}

// Failure returns a value carrying err. A nil err is rejected with an
// *ArgumentError matching ErrInvalidArgument.
func Failure[E, D any](err E) (RemoteData[E, D], error) {
	if isNil(err) {
		return RemoteData[E, D]{}, &ArgumentError{Param: "error"}
	}
	return RemoteData[E, D]{kind: KindFailure, err: err}, nil
}

// MustSuccess is like Success but panics if data is nil.
func MustSuccess[E, D any](data D) RemoteData[E, D] {
	rd, err := Success[E, D](data)
	if err != nil {
		panic(err)
	}
	return rd
}

// MustFailure is like Failure but panics if err is nil.
func MustFailure[E, D any](err E) RemoteData[E, D] {
	rd, e := Failure[E, D](err)
	if e != nil {
		panic(e)
	}
	return rd
}

// Kind returns the discriminant of the value.
func (rd RemoteData[E, D]) Kind() Kind {
	return rd.kind
}

// IsInitialized reports whether no request has been issued yet.
func (rd RemoteData[E, D]) IsInitialized() bool { return rd.kind == KindInitialized }

// IsPending reports whether a request is in flight.
func (rd RemoteData[E, D]) IsPending() bool { return rd.kind == KindPending }

// IsFailure reports whether the value carries an error.
func (rd RemoteData[E, D]) IsFailure() bool { return rd.kind == KindFailure }

// IsSuccess reports whether the value carries data.
func (rd RemoteData[E, D]) IsSuccess() bool { return rd.kind == KindSuccess }

// Data returns the data payload and true for a Success, or the zero value
// and false otherwise.
func (rd RemoteData[E, D]) Data() (D, bool) {
	if rd.kind != KindSuccess {
		var zero D
		return zero, false
	}
	return rd.data, true
}

// Err returns the error payload and true for a Failure, or the zero value
// and false otherwise.
func (rd RemoteData[E, D]) Err() (E, bool) {
	if rd.kind != KindFailure {
		var zero E
		return zero, false
	}
	return rd.err, true
}

// String returns the kind, with the payload for Failure and Success.
func (rd RemoteData[E, D]) String() string {
	switch rd.kind {
	case KindInitialized, KindPending:
		return rd.kind.String()
	case KindFailure:
		return fmt.Sprintf("Failure(%v)", rd.err)
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", rd.data)
	default:
		return fmt.Sprintf("RemoteData(%s)", rd.kind)
	}
}

// isNil reports whether v holds no value: an untyped nil, or a nil value of
// a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
