package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update([]string{"/", "/about"}, nil)

	snap := s.Snapshot()
	if !snap.HasRoutes || len(snap.Routes) != 2 || snap.Routes[1] != "/about" {
		t.Fatalf("snapshot routes = %#v, want 2 routes", snap.Routes)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Routes[0] = "/changed"
	if got := s.Snapshot().Routes[0]; got != "/" {
		t.Fatalf("Snapshot should clone routes; got %q want /", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]string{"/about"}, nil)

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if len(snap.Routes) != 1 || snap.Routes[0] != "/about" {
		t.Fatalf("routes changed on error: got %#v", snap.Routes)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("cloned error should wrap the original")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	if snap := s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store = %#v, want online with 0 failures", snap)
	}

	s.Update(nil, errors.New("fail 1"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure = %#v, want online", snap)
	}

	s.Update(nil, errors.New("fail 2"))
	if snap := s.Snapshot(); snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures = %#v, want offline", snap)
	}

	s.Update(nil, nil)
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success = %#v, want online", snap)
	}
	if !snap.HasRoutes || snap.Routes != nil {
		t.Fatalf("empty success should record an empty route list: %#v", snap)
	}
}
