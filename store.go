package remotedata

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Store holds the current RemoteData for the code that drives a request.
//
// A Store applies no transition rules: any value may replace any other. It
// only makes the replacement visible to concurrent readers and subscribers,
// and reports it through capitan signals and an optional MetricsProvider.
type Store[E, D any] struct {
	name    string
	clock   clockz.Clock
	metrics MetricsProvider
	history *transitionRing

	current atomic.Pointer[entry[E, D]]

	mu          sync.Mutex
	subscribers map[uint64]*subscriber[E, D]
	nextID      uint64
}

// entry pairs a value with the time it was stored.
type entry[E, D any] struct {
	value RemoteData[E, D]
	at    time.Time
}

// subscriber receives the latest value. Its channel buffers one value and a
// newer value replaces an unread one.
type subscriber[E, D any] struct {
	ch chan RemoteData[E, D]
}

// offer delivers v without blocking. Callers hold the Store mutex.
func (s *subscriber[E, D]) offer(v RemoteData[E, D]) {
	select {
	case s.ch <- v:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- v:
	default:
	}
}

// NewStore creates a Store holding Initialized. The name identifies the
// Store in emitted signals.
//
// Example:
//
//	profile := remotedata.NewStore[error, *Profile]("profile").
//	    HistorySize(16)
//
//	_ = profile.Set(ctx, remotedata.Pending[error, *Profile]())
//	p, err := client.Fetch(ctx)
//	if err != nil {
//	    _ = profile.Set(ctx, remotedata.MustFailure[error, *Profile](err))
//	} else {
//	    _ = profile.Set(ctx, remotedata.MustSuccess[error](p))
//	}
func NewStore[E, D any](name string) *Store[E, D] {
	s := &Store[E, D]{
		name:        name,
		clock:       clockz.RealClock,
		subscribers: make(map[uint64]*subscriber[E, D]),
	}
	s.current.Store(&entry[E, D]{value: Initialized[E, D](), at: s.clock.Now()})
	return s
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Clock sets a custom clock for timestamps and dwell times.
// Use this with clockz.FakeClock for deterministic tests.
// Must be called before Set or Subscribe.
func (s *Store[E, D]) Clock(clock clockz.Clock) *Store[E, D] {
	s.clock = clock
	cur := s.current.Load()
	s.current.Store(&entry[E, D]{value: cur.value, at: clock.Now()})
	return s
}

// Metrics sets a metrics provider for observability integration.
// Must be called before Set or Subscribe.
func (s *Store[E, D]) Metrics(provider MetricsProvider) *Store[E, D] {
	s.metrics = provider
	return s
}

// HistorySize sets the number of recent transitions to retain.
// Use 0 (default) to disable History. Must be called before Set.
func (s *Store[E, D]) HistorySize(n int) *Store[E, D] {
	s.history = newTransitionRing(n)
	return s
}

// Name returns the name given to NewStore.
func (s *Store[E, D]) Name() string {
	return s.name
}

// Load returns the current value.
func (s *Store[E, D]) Load() RemoteData[E, D] {
	return s.current.Load().value
}

// Kind returns the kind of the current value.
func (s *Store[E, D]) Kind() Kind {
	return s.current.Load().value.kind
}

// Since returns how long the current value has been held.
func (s *Store[E, D]) Since() time.Duration {
	return s.clock.Since(s.current.Load().at)
}

// History returns the recent transitions, oldest first.
// Returns nil if history is not enabled (see HistorySize).
func (s *Store[E, D]) History() []Transition {
	return s.history.all()
}

// Subscribers returns the number of active subscriptions.
func (s *Store[E, D]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// Set replaces the current value with next and notifies subscribers.
//
// A value whose kind is outside the known set is rejected with an
// *InvariantError and the current value is kept.
func (s *Store[E, D]) Set(ctx context.Context, next RemoteData[E, D]) error {
	if !next.kind.Valid() {
		return &InvariantError{Value: next}
	}

	s.mu.Lock()
	prev := s.current.Load()
	now := s.clock.Now()
	dwell := now.Sub(prev.at)
	s.current.Store(&entry[E, D]{value: next, at: now})
	s.history.push(Transition{From: prev.value.kind, To: next.kind, At: now})
	for _, sub := range s.subscribers {
		sub.offer(next)
	}
	s.mu.Unlock()

	capitan.Emit(ctx, StoreTransitioned,
		KeyStore.Field(s.name),
		KeyOldKind.Field(prev.value.kind.String()),
		KeyNewKind.Field(next.kind.String()),
		KeyDwell.Field(dwell),
	)
	if e, ok := next.Err(); ok {
		capitan.Emit(ctx, StoreFailed,
			KeyStore.Field(s.name),
			KeyError.Field(fmt.Sprint(e)),
		)
	}
	if s.metrics != nil {
		s.metrics.OnTransition(prev.value.kind, next.kind, dwell)
	}

	return nil
}

// Subscribe returns a channel that receives the current value immediately
// and the latest value after each Set. A subscriber that falls behind only
// sees the most recent value. The channel is closed when ctx is done.
func (s *Store[E, D]) Subscribe(ctx context.Context) <-chan RemoteData[E, D] {
	sub := &subscriber[E, D]{ch: make(chan RemoteData[E, D], 1)}

	s.mu.Lock()
	sub.ch <- s.current.Load().value
	s.nextID++
	id := s.nextID
	s.subscribers[id] = sub
	count := len(s.subscribers)
	s.mu.Unlock()

	capitan.Emit(ctx, StoreSubscribed,
		KeyStore.Field(s.name),
		KeySubscribers.Field(count),
	)
	s.reportSubscribers(count)

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.subscribers, id)
		close(sub.ch)
		count := len(s.subscribers)
		s.mu.Unlock()

		capitan.Emit(context.WithoutCancel(ctx), StoreUnsubscribed,
			KeyStore.Field(s.name),
			KeySubscribers.Field(count),
		)
		s.reportSubscribers(count)
	}()

	return sub.ch
}

// reportSubscribers passes the subscription count to the metrics provider.
func (s *Store[E, D]) reportSubscribers(count int) {
	if s.metrics != nil {
		s.metrics.OnSubscribersChanged(count)
	}
}
