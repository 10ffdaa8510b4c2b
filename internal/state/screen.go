package state

import (
	"time"

	"github.com/five82/uniterm/internal/canvas"
)

// Screen tracks the load lifecycle of one composition screen. The zero value
// is a screen that has not started loading. Screen is owned by a single
// goroutine (the UI update loop) and is not synchronized.
type Screen struct {
	composition         *canvas.ComponentInstance
	loading             bool
	refreshing          bool
	err                 error
	generation          int
	lastLoaded          time.Time
	consecutiveFailures int
}

// ScreenSnapshot is a read-only view of a Screen.
type ScreenSnapshot struct {
	Composition         *canvas.ComponentInstance
	Loading             bool
	Refreshing          bool
	Err                 error
	LastLoaded          time.Time
	ConsecutiveFailures int
}

// Busy reports whether a load is in flight.
func (s ScreenSnapshot) Busy() bool {
	return s.Loading || s.Refreshing
}

// ShowSpinner reports whether the screen has nothing to show but a spinner.
func (s ScreenSnapshot) ShowSpinner() bool {
	return s.Loading && s.Composition == nil
}

// ShowError reports whether the error state replaces the content.
func (s ScreenSnapshot) ShowError() bool {
	return !s.ShowSpinner() && (s.Err != nil || s.Composition == nil)
}

// Begin starts a load and returns its generation. A forced load is a
// refresh: the current composition stays visible while it runs. The error
// from the previous load is cleared either way.
func (s *Screen) Begin(force bool) int {
	s.generation++
	if force {
		s.refreshing = true
	} else {
		s.loading = true
	}
	s.err = nil
	return s.generation
}

// Resolve records the outcome of the load with the given generation. Stale
// results from superseded loads are ignored and Resolve returns false. On
// error the previous composition is kept.
func (s *Screen) Resolve(generation int, comp *canvas.ComponentInstance, err error) bool {
	if generation != s.generation {
		return false
	}
	s.loading = false
	s.refreshing = false
	if err != nil {
		s.err = err
		s.consecutiveFailures++
		return true
	}
	s.composition = comp
	s.err = nil
	s.consecutiveFailures = 0
	s.lastLoaded = time.Now()
	return true
}

// Snapshot returns the current state.
func (s *Screen) Snapshot() ScreenSnapshot {
	return ScreenSnapshot{
		Composition:         s.composition,
		Loading:             s.loading,
		Refreshing:          s.refreshing,
		Err:                 s.err,
		LastLoaded:          s.lastLoaded,
		ConsecutiveFailures: s.consecutiveFailures,
	}
}
