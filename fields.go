package remotedata

import "github.com/zoobzio/capitan"

// Field keys for Store events.
var (
	// KeyStore is the name of the Store.
	KeyStore = capitan.NewStringKey("store")

	// KeyOldKind is the kind held before a transition.
	KeyOldKind = capitan.NewStringKey("old_kind")

	// KeyNewKind is the kind held after a transition.
	KeyNewKind = capitan.NewStringKey("new_kind")

	// KeyError is the formatted error payload of a Failure.
	KeyError = capitan.NewStringKey("error")

	// KeyDwell is how long the previous value was held.
	KeyDwell = capitan.NewDurationKey("dwell")

	// KeySubscribers is the number of active subscriptions.
	KeySubscribers = capitan.NewIntKey("subscribers")
)
