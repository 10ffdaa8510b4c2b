package state

import "time"

// MaxBackoff caps the delay between retries after repeated failures.
const MaxBackoff = 30 * time.Second

// Backoff returns the delay before the next attempt: base doubled once per
// consecutive failure, capped at MaxBackoff. A base above the cap is
// returned unchanged.
func Backoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 || base >= MaxBackoff {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= MaxBackoff {
			return MaxBackoff
		}
	}
	return delay
}
