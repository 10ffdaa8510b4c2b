package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/state"
)

const defaultPollInterval = 15 * time.Second

// RoutesSource lists the routes the poller keeps fresh.
type RoutesSource interface {
	Routes(ctx context.Context) ([]string, error)
}

// StartPoller launches a background goroutine that refreshes the route list
// in store, backing off while the API fails. It returns immediately; the
// returned channel is closed once the goroutine has exited after ctx is
// cancelled.
func StartPoller(ctx context.Context, store *state.Store, source RoutesSource, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("poller")

	done := make(chan struct{})
	go func() {
		defer close(done)

		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			refresh(ctx, store, source, logger)
			if ctx.Err() != nil {
				return
			}

			wait := state.Backoff(store.Snapshot().ConsecutiveFailures, interval)
			timer.Reset(wait)
		}
	}()
	return done
}

func refresh(ctx context.Context, store *state.Store, source RoutesSource, logger *zap.Logger) {
	routes, err := source.Routes(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		logger.Warn("routes poll failed",
			zap.Error(err),
			zap.Int("failures", store.Snapshot().ConsecutiveFailures),
		)
		return
	}
	store.Update(routes, nil)
	logger.Debug("routes polled", zap.Int("count", len(routes)))
}
