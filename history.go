package remotedata

import (
	"sync"
	"time"
)

// Transition records one replacement of a Store's value. Payloads are not
// retained.
type Transition struct {
	From Kind
	To   Kind
	At   time.Time
}

// transitionRing is a thread-safe ring buffer of recent transitions.
type transitionRing struct {
	mu      sync.RWMutex
	entries []Transition
	size    int
	head    int
	count   int
}

// newTransitionRing creates a ring buffer with the given capacity.
// If size is 0, the ring buffer is disabled.
func newTransitionRing(size int) *transitionRing {
	if size <= 0 {
		return nil
	}
	return &transitionRing{
		entries: make([]Transition, size),
		size:    size,
	}
}

// push adds a transition, evicting the oldest when full.
func (r *transitionRing) push(t Transition) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = t
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// all returns the retained transitions, oldest first.
func (r *transitionRing) all() []Transition {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}

	result := make([]Transition, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.entries[(start+i)%r.size]
	}
	return result
}
