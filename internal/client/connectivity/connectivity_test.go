package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerTransitions(t *testing.T) {
	tracker := NewTracker(false)
	assert.False(t, tracker.Online())

	tracker.SetOnline(true)
	assert.True(t, tracker.Online())

	select {
	case status := <-tracker.Events():
		assert.Equal(t, Online, status)
	default:
		t.Fatal("expected a transition event")
	}

	// Setting the same state again is not a transition.
	tracker.SetOnline(true)
	select {
	case status := <-tracker.Events():
		t.Fatalf("unexpected event %v", status)
	default:
	}

	tracker.SetOnline(false)
	select {
	case status := <-tracker.Events():
		assert.Equal(t, Offline, status)
	default:
		t.Fatal("expected a transition event")
	}
}

func TestTrackerNeverBlocks(t *testing.T) {
	tracker := NewTracker(false)

	// Nobody reading: a long flap burst must not block the caller. The
	// buffer keeps the newest transitions.
	for i := range 100 {
		tracker.SetOnline(i%2 == 1)
	}

	require.True(t, tracker.Online(), "final state survives the burst")

	drained := 0
	for {
		select {
		case <-tracker.Events():
			drained++
			continue
		default:
		}
		break
	}
	assert.LessOrEqual(t, drained, 16)
	assert.Positive(t, drained)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "online", Online.String())
	assert.Equal(t, "offline", Offline.String())
}
