// Package testing provides test utilities and helpers for remotedata values and stores.
package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/remotedata"
)

// Call is a single recorded handler invocation.
type Call struct {
	Name string
	Args []any
}

// Recorder records handler invocations so tests can assert which handler ran,
// how often, and with which arguments. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Record appends a call.
func (r *Recorder) Record(name string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

// Calls returns the recorded calls for name, in order.
func (r *Recorder) Calls(name string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	return len(r.Calls(name))
}

// Total returns the number of recorded calls across all names.
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Thunk returns a zero-argument handler that records a call to name and returns result.
func Thunk[T any](r *Recorder, name string, result T) func() T {
	return func() T {
		r.Record(name)
		return result
	}
}

// Handler returns a one-argument handler that records a call to name with its
// argument and returns result.
func Handler[A, T any](r *Recorder, name string, result T) func(A) T {
	return func(a A) T {
		r.Record(name, a)
		return result
	}
}

// RequireCalls fails the test immediately unless name was called exactly n times.
func RequireCalls(t *testing.T, r *Recorder, name string, n int) {
	t.Helper()
	if got := r.Count(name); got != n {
		t.Fatalf("expected %d calls to %s, got %d", n, name, got)
	}
}

// RequireKind fails the test immediately if rd is not of the expected kind.
func RequireKind[E, D any](t *testing.T, rd remotedata.RemoteData[E, D], expected remotedata.Kind) {
	t.Helper()
	if got := rd.Kind(); got != expected {
		t.Fatalf("expected kind %s, got %s", expected, got)
	}
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForKind waits until the store holds a value of the expected kind or timeout occurs.
func WaitForKind[E, D any](t *testing.T, s *remotedata.Store[E, D], expected remotedata.Kind, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return s.Kind() == expected
	})
}

// Next receives the next value from a subscription, failing the test if none
// arrives within timeout or the channel is closed.
func Next[E, D any](t *testing.T, ch <-chan remotedata.RemoteData[E, D], timeout time.Duration) remotedata.RemoteData[E, D] {
	t.Helper()
	select {
	case rd, ok := <-ch:
		if !ok {
			t.Fatal("subscription closed before a value arrived")
		}
		return rd
	case <-time.After(timeout):
		t.Fatalf("no value received within %v", timeout)
		return remotedata.RemoteData[E, D]{}
	}
}
