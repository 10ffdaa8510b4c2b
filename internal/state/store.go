package state

import (
	"fmt"
	"sync"
	"time"
)

// RoutesSnapshot is the latest route list available to the UI.
type RoutesSnapshot struct {
	Routes              []string
	HasRoutes           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s RoutesSnapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates the background route poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot RoutesSnapshot
}

// Update replaces the stored routes. When err is non-nil the previous routes
// are kept but the error is recorded for visibility.
func (s *Store) Update(routes []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Routes = cloneStrings(routes)
	s.snapshot.HasRoutes = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() RoutesSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Routes = cloneStrings(s.snapshot.Routes)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneStrings(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	dup := make([]string, len(items))
	copy(dup, items)
	return dup
}
