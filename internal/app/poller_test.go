package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/five82/uniterm/internal/state"
)

type fakeRoutes struct {
	mu     sync.Mutex
	calls  int
	routes []string
	err    error
	polled chan struct{}
}

func newFakeRoutes(routes []string, err error) *fakeRoutes {
	return &fakeRoutes{routes: routes, err: err, polled: make(chan struct{}, 16)}
}

func (f *fakeRoutes) Routes(context.Context) ([]string, error) {
	f.mu.Lock()
	f.calls++
	routes, err := f.routes, f.err
	f.mu.Unlock()
	select {
	case f.polled <- struct{}{}:
	default:
	}
	return routes, err
}

func (f *fakeRoutes) set(routes []string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes, f.err = routes, err
}

func waitPolls(t *testing.T, f *fakeRoutes, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.polled:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for poll %d", i+1)
		}
	}
}

func TestStartPoller_UpdatesStoreAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	store := &state.Store{}
	source := newFakeRoutes([]string{"/", "/about"}, nil)

	done := StartPoller(ctx, store, source, 10*time.Millisecond, zaptest.NewLogger(t))
	waitPolls(t, source, 2)

	snap := store.Snapshot()
	if !snap.HasRoutes || len(snap.Routes) != 2 || snap.Routes[1] != "/about" {
		t.Fatalf("snapshot = %+v, want both routes", snap)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("poller did not stop after cancel")
	}
}

func TestStartPoller_FailuresKeepRoutes(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := &state.Store{}
	source := newFakeRoutes([]string{"/"}, nil)

	done := StartPoller(ctx, store, source, 5*time.Millisecond, zaptest.NewLogger(t))
	waitPolls(t, source, 1)

	errDown := errors.New("api down")
	source.set(nil, errDown)
	waitPolls(t, source, 2)

	// The store is updated after the poll returns.
	deadline := time.Now().Add(2 * time.Second)
	for store.Snapshot().ConsecutiveFailures < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("failures = %d, want at least 2", store.Snapshot().ConsecutiveFailures)
		}
		time.Sleep(time.Millisecond)
	}

	snap := store.Snapshot()
	if !snap.IsOffline() {
		t.Fatalf("expected offline after repeated failures")
	}
	if !errors.Is(snap.LastError, errDown) {
		t.Fatalf("LastError = %v, want %v", snap.LastError, errDown)
	}
	if len(snap.Routes) != 1 || snap.Routes[0] != "/" {
		t.Fatalf("routes = %v, want previous routes kept", snap.Routes)
	}

	cancel()
	<-done
}

func TestStartPoller_DefaultInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	source := newFakeRoutes(nil, nil)
	done := StartPoller(ctx, &state.Store{}, source, 0, nil)

	// The first poll runs immediately; the next one is a default interval away.
	waitPolls(t, source, 1)
	cancel()
	<-done

	source.mu.Lock()
	defer source.mu.Unlock()
	if source.calls != 1 {
		t.Fatalf("calls = %d, want 1", source.calls)
	}
}
