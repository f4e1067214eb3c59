package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/courtside/statsync/internal/client/connectivity"
)

// Watcher defaults
const (
	DefaultDebounce      = 2 * time.Second
	DefaultCheckInterval = time.Minute
)

// Watcher turns external events into drain passes: the offline-to-online
// transition (debounced, so a flapping connection starts one pass, not many)
// and a periodic check of the ShouldSync predicate.
type Watcher struct {
	manager  *Manager
	observer connectivity.Observer
	clock    clockwork.Clock
	logger   *slog.Logger

	debounce      time.Duration
	checkInterval time.Duration
}

// NewWatcher creates a watcher with the default debounce and check interval
func NewWatcher(manager *Manager, observer connectivity.Observer, clock clockwork.Clock, logger *slog.Logger) *Watcher {
	return &Watcher{
		manager:       manager,
		observer:      observer,
		clock:         clock,
		logger:        logger,
		debounce:      DefaultDebounce,
		checkInterval: DefaultCheckInterval,
	}
}

// Run blocks until the context is cancelled, draining on connectivity
// recovery and on the periodic check. Drain failures are logged and retried
// on the next trigger, never propagated: the user-facing operations already
// completed against the cache.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := w.clock.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case status := <-w.observer.Events():
			if status != connectivity.Online {
				continue
			}
			if !w.settle(ctx) {
				continue
			}
			w.drain(ctx, "connectivity")

		case <-ticker.Chan():
			if !w.observer.Online() {
				continue
			}
			due, err := w.manager.NeedsSync(ctx)
			if err != nil {
				w.logger.Warn("periodic sync check failed", "error", err)
				continue
			}
			if due {
				w.drain(ctx, "periodic")
			}
		}
	}
}

// settle waits out the debounce window, swallowing any transitions that
// arrive meanwhile, and reports whether the client is still online after it.
func (w *Watcher) settle(ctx context.Context) bool {
	timer := w.clock.NewTimer(w.debounce)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-w.observer.Events():
			// Flap during the window; keep waiting on the same timer.
		case <-timer.Chan():
			return w.observer.Online()
		}
	}
}

func (w *Watcher) drain(ctx context.Context, trigger string) {
	result, err := w.manager.Drain(ctx)
	if err != nil {
		if errors.Is(err, ErrDrainInProgress) {
			return
		}
		w.logger.Warn("drain pass failed", "trigger", trigger, "error", err)
		return
	}
	w.logger.Info("drain pass complete",
		"trigger", trigger,
		"attempted", result.Attempted,
		"failed", result.Failed)
}
