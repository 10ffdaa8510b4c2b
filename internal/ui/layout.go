package ui

import "time"

// Chrome rows around the screen body.
const (
	headerHeight = 1
	footerHeight = 1
)

// Log display limits.
const (
	// LogTailLines is how many lines of the log file the logs screen keeps.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI tick interval.
	DefaultUIInterval = time.Second

	// DefaultRefreshEvery is how often an idle composition screen reloads.
	DefaultRefreshEvery = 15 * time.Second

	// LoadTimeout bounds one composition load, covering every slug variant.
	LoadTimeout = 20 * time.Second

	// FlashDuration is how long a status message stays in the footer.
	FlashDuration = 5 * time.Second
)
