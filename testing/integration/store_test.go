package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/remotedata"
)

type profile struct {
	Name string
}

// fetch simulates the caller that drives a request and records each state in the store.
func fetch(ctx context.Context, s *remotedata.Store[error, *profile], result *profile, err error) {
	_ = s.Set(ctx, remotedata.Pending[error, *profile]())
	time.Sleep(10 * time.Millisecond)
	if err != nil {
		_ = s.Set(ctx, remotedata.MustFailure[error, *profile](err))
		return
	}
	_ = s.Set(ctx, remotedata.MustSuccess[error](result))
}

func TestStore_TransitionSignals(t *testing.T) {
	const name = "integration.transitions"

	var (
		mu          sync.Mutex
		transitions []string
	)
	capitan.Hook(remotedata.StoreTransitioned, func(_ context.Context, e *capitan.Event) {
		store, _ := remotedata.KeyStore.From(e)
		if store != name {
			return
		}
		from, _ := remotedata.KeyOldKind.From(e)
		to, _ := remotedata.KeyNewKind.From(e)
		mu.Lock()
		transitions = append(transitions, from+"->"+to)
		mu.Unlock()
	})

	ctx := context.Background()
	s := remotedata.NewStore[error, *profile](name)
	fetch(ctx, s, &profile{Name: "alice"}, nil)

	ok := waitFor(t, time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(transitions) == 2
	})
	if !ok {
		t.Fatalf("expected 2 transition signals, got %v", transitions)
	}

	mu.Lock()
	defer mu.Unlock()
	if transitions[0] != "Initialized->Pending" {
		t.Errorf("expected Initialized->Pending, got %s", transitions[0])
	}
	if transitions[1] != "Pending->Success" {
		t.Errorf("expected Pending->Success, got %s", transitions[1])
	}
}

func TestStore_FailedSignalCarriesError(t *testing.T) {
	const name = "integration.failed"

	var (
		mu     sync.Mutex
		errMsg string
	)
	capitan.Hook(remotedata.StoreFailed, func(_ context.Context, e *capitan.Event) {
		store, _ := remotedata.KeyStore.From(e)
		if store != name {
			return
		}
		msg, _ := remotedata.KeyError.From(e)
		mu.Lock()
		errMsg = msg
		mu.Unlock()
	})

	ctx := context.Background()
	s := remotedata.NewStore[error, *profile](name)
	fetch(ctx, s, nil, errors.New("connection refused"))

	ok := waitFor(t, time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return errMsg != ""
	})
	if !ok {
		t.Fatal("expected failed signal")
	}

	mu.Lock()
	defer mu.Unlock()
	if errMsg != "connection refused" {
		t.Errorf("expected 'connection refused', got %q", errMsg)
	}
}

func TestStore_SubscriberRendersUntilSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := remotedata.NewStore[error, *profile]("integration.render")
	render := remotedata.Fold(
		func() string { return "idle" },
		func() string { return "loading" },
		func(err error) string { return "error: " + err.Error() },
		func(p *profile) string { return "hello " + p.Name },
	)

	frames := make(chan string, 16)
	go func() {
		defer close(frames)
		for rd := range s.Subscribe(ctx) {
			frame := render(rd)
			frames <- frame
			if rd.IsSuccess() {
				return
			}
		}
	}()

	go fetch(ctx, s, &profile{Name: "bob"}, nil)

	var last string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				if last != "hello bob" {
					t.Errorf("expected final frame 'hello bob', got %q", last)
				}
				return
			}
			last = frame
		case <-timeout:
			t.Fatalf("timed out, last frame %q", last)
		}
	}
}

func TestStore_MatchOnLoadedValue(t *testing.T) {
	ctx := context.Background()
	s := remotedata.NewStore[error, *profile]("integration.match")
	fetch(ctx, s, nil, errors.New("not found"))

	label, err := remotedata.Match(s.Load(), remotedata.Partial(
		func() string { return "not ready" },
		remotedata.Cases[error, *profile, string]{
			Failure: func(err error) string { return "failed: " + err.Error() },
		},
	))
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if label != "failed: not found" {
		t.Errorf("expected 'failed: not found', got %q", label)
	}
}
