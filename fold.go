package remotedata

// Fold returns a view that reduces a RemoteData to a single value by calling
// exactly one handler chosen by the value's kind.
//
// The handler order is fixed: initialized, pending, failure, success.
// onFailure receives the stored error and onSuccess the stored data.
//
// The view panics with an *InvariantError if the value's kind is not one of
// the four known kinds. That can only happen for a value built outside this
// package's constructors and is treated as a programming error.
func Fold[E, D, T any](
	onInitialized func() T,
	onPending func() T,
	onFailure func(E) T,
	onSuccess func(D) T,
) func(RemoteData[E, D]) T {
	return func(rd RemoteData[E, D]) T {
		switch rd.kind {
		case KindInitialized:
			return onInitialized()
		case KindPending:
			return onPending()
		case KindFailure:
			return onFailure(rd.err)
		case KindSuccess:
			return onSuccess(rd.data)
		default:
			panic(&InvariantError{Value: rd})
		}
	}
}
