// Package connectivity tracks whether the client currently has network
// reachability and fans out transition events to subscribers.
package connectivity

import "sync"

//go:generate moq -out observer_mock.go . Observer

// Status is the connectivity state of the client.
type Status int

// Status values
const (
	Offline Status = iota
	Online
)

// String implements fmt.Stringer
func (s Status) String() string {
	if s == Online {
		return "online"
	}
	return "offline"
}

// Observer exposes the current connectivity state and a stream of
// transitions. The sync watcher subscribes to Events and triggers a drain on
// the offline-to-online edge.
type Observer interface {
	// Online reports the current connectivity state.
	Online() bool

	// Events returns a channel of state transitions. Only actual changes are
	// delivered; setting the same state twice emits nothing.
	Events() <-chan Status
}

// Tracker is a settable Observer. The platform layer (or tests) push state
// into it with SetOnline.
type Tracker struct {
	mu     sync.Mutex
	online bool
	events chan Status
}

// NewTracker returns a tracker with the given initial state.
func NewTracker(online bool) *Tracker {
	return &Tracker{
		online: online,
		// Buffered so a flapping connection never blocks the caller; the
		// watcher debounces on its side.
		events: make(chan Status, 16),
	}
}

// Online reports the current connectivity state
func (t *Tracker) Online() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.online
}

// Events returns the transition stream
func (t *Tracker) Events() <-chan Status {
	return t.events
}

// SetOnline records a state change and emits an event on an actual
// transition. A full events buffer drops the oldest pending event rather
// than blocking.
func (t *Tracker) SetOnline(online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.online == online {
		return
	}
	t.online = online

	status := Offline
	if online {
		status = Online
	}

	select {
	case t.events <- status:
	default:
		select {
		case <-t.events:
		default:
		}
		t.events <- status
	}
}
