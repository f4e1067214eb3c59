package connectivity

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultProbeInterval is how often the prober re-checks reachability.
const DefaultProbeInterval = 15 * time.Second

// ProbeFunc reports whether the remote store is currently reachable. It must
// honor the context and come back within a bounded time.
type ProbeFunc func(ctx context.Context) bool

// Prober feeds a Tracker from periodic reachability probes. It is the
// production source of connectivity transitions; platforms with a native
// reachability signal can call Tracker.SetOnline directly instead.
type Prober struct {
	probe    ProbeFunc
	tracker  *Tracker
	clock    clockwork.Clock
	logger   *slog.Logger
	interval time.Duration
}

// NewProber creates a prober with the default interval
func NewProber(probe ProbeFunc, tracker *Tracker, clock clockwork.Clock, logger *slog.Logger) *Prober {
	return &Prober{
		probe:    probe,
		tracker:  tracker,
		clock:    clock,
		logger:   logger,
		interval: DefaultProbeInterval,
	}
}

// Run blocks until the context is cancelled, probing on every tick and
// pushing the result into the tracker. The tracker suppresses same-state
// pushes, so only actual transitions reach subscribers.
func (p *Prober) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			online := p.probe(ctx)
			if online != p.tracker.Online() {
				p.logger.Info("connectivity changed", "online", online)
			}
			p.tracker.SetOnline(online)
		}
	}
}
