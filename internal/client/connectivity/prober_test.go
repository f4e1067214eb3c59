package connectivity

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProberFeedsTracker(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC))
	tracker := NewTracker(false)

	// Each probe result is handed over explicitly so the test controls every
	// tick's outcome.
	results := make(chan bool, 1)
	prober := NewProber(func(ctx context.Context) bool {
		return <-results
	}, tracker, clock, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = prober.Run(ctx)
	}()

	clock.BlockUntil(1)
	results <- true
	clock.Advance(DefaultProbeInterval)

	require.Eventually(t, func() bool {
		return tracker.Online()
	}, time.Second, 5*time.Millisecond, "a successful probe must flip the tracker online")

	select {
	case status := <-tracker.Events():
		assert.Equal(t, Online, status)
	default:
		t.Fatal("expected an online transition event")
	}

	clock.BlockUntil(1)
	results <- false
	clock.Advance(DefaultProbeInterval)

	require.Eventually(t, func() bool {
		return !tracker.Online()
	}, time.Second, 5*time.Millisecond)

	select {
	case status := <-tracker.Events():
		assert.Equal(t, Offline, status)
	default:
		t.Fatal("expected an offline transition event")
	}

	cancel()
	<-done
}

func TestProberSameStateEmitsNothing(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC))
	tracker := NewTracker(true)

	probed := make(chan struct{}, 4)
	prober := NewProber(func(ctx context.Context) bool {
		probed <- struct{}{}
		return true
	}, tracker, clock, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = prober.Run(ctx)
	}()

	clock.BlockUntil(1)
	clock.Advance(DefaultProbeInterval)
	<-probed

	assert.True(t, tracker.Online())
	select {
	case status := <-tracker.Events():
		t.Fatalf("unexpected event %v for an unchanged state", status)
	default:
	}

	cancel()
	<-done
}
