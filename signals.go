package remotedata

import "github.com/zoobzio/capitan"

// Store signals.
var (
	// StoreTransitioned is emitted when a Store replaces its value.
	StoreTransitioned = capitan.NewSignal(
		"remotedata.store.transitioned",
		"Store value replaced",
	)

	// StoreFailed is emitted when a Store receives a Failure value.
	StoreFailed = capitan.NewSignal(
		"remotedata.store.failed",
		"Store received a failure",
	)
)

// Subscription signals.
var (
	// StoreSubscribed is emitted when a subscription to a Store starts.
	StoreSubscribed = capitan.NewSignal(
		"remotedata.store.subscribed",
		"Store subscription started",
	)

	// StoreUnsubscribed is emitted when a subscription's context is done.
	StoreUnsubscribed = capitan.NewSignal(
		"remotedata.store.unsubscribed",
		"Store subscription ended",
	)
)
