// Package remotedata models the lifecycle of an asynchronously loaded value.
//
// A RemoteData[E, D] is exactly one of four states:
//
//   - Initialized: no request issued yet (the zero value)
//   - Pending: request in flight
//   - Failure: request failed with an error of type E
//   - Success: request succeeded with data of type D
//
// Values are immutable. Code that drives a request moves between states by
// constructing new values; the package never fetches anything and applies
// no transition rules of its own.
//
// # Construction
//
// Success and Failure reject nil payloads, so a narrowed value always carries
// a usable payload:
//
//	rd, err := remotedata.Success[error](profile)
//	if errors.Is(err, remotedata.ErrInvalidArgument) {
//	    // profile was nil
//	}
//
// MustSuccess and MustFailure panic instead, for literals and tests.
//
// # Fold
//
// Fold builds a view from one handler per state, in the fixed order
// initialized, pending, failure, success:
//
//	render := remotedata.Fold(
//	    func() string { return "" },
//	    func() string { return "loading..." },
//	    func(err error) string { return "error: " + err.Error() },
//	    func(p *Profile) string { return p.Name },
//	)
//
//	fmt.Println(render(rd))
//
// # Match
//
// Match takes a Matcher with named handlers. A complete matcher needs all
// four; a partial matcher takes any subset plus a fallback:
//
//	label, err := remotedata.Match(rd, remotedata.Partial(
//	    func() string { return "not ready" },
//	    remotedata.Cases[error, *Profile, string]{
//	        Success: func(p *Profile) string { return p.Name },
//	    },
//	))
//
// Matchers are validated before any handler runs: a complete matcher with a
// missing handler fails with ErrIncompleteMatcher and a partial matcher
// without a fallback fails with ErrMissingFallback.
//
// # Store
//
// Store holds the current value for the code that drives a request, makes
// replacements visible to concurrent readers and subscribers, and emits
// capitan signals:
//
//	capitan.Hook(remotedata.StoreTransitioned, func(_ context.Context, e *capitan.Event) {
//	    from, _ := remotedata.KeyOldKind.From(e)
//	    to, _ := remotedata.KeyNewKind.From(e)
//	    log.Printf("%s -> %s", from, to)
//	})
package remotedata
