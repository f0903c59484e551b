package remotedata

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on Store events.
type MetricsProvider interface {
	// OnTransition is called after a Store replaces its value.
	// Dwell is the time the previous value was held.
	OnTransition(from, to Kind, dwell time.Duration)

	// OnSubscribersChanged is called when a subscription starts or ends,
	// with the number of active subscriptions.
	OnSubscribersChanged(count int)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnTransition(_, _ Kind, _ time.Duration) {}
func (NoOpMetricsProvider) OnSubscribersChanged(_ int)              {}
