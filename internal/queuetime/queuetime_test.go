package queuetime_test

import (
	"context"
	"testing"
	"time"

	"github.com/nikolayk812/tuckshop/internal/queuetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		initial      int
		interval     time.Duration
		maxIncrement int
		wantError    string
	}{
		{name: "valid: ok", initial: 5, interval: time.Second, maxIncrement: 3},
		{name: "zero initial: ok", initial: 0, interval: time.Second, maxIncrement: 3},
		{name: "negative initial: error", initial: -1, interval: time.Second, maxIncrement: 3,
			wantError: "initial minutes must not be negative, got -1"},
		{name: "zero interval: error", initial: 5, interval: 0, maxIncrement: 3,
			wantError: "interval must be positive, got 0s"},
		{name: "zero increment: error", initial: 5, interval: time.Second, maxIncrement: 0,
			wantError: "max increment must be positive, got 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := queuetime.New(tt.initial, tt.interval, tt.maxIncrement)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, sim)
		})
	}
}

func TestEmissionsNonDecreasing(t *testing.T) {
	sim, err := queuetime.New(5, 5*time.Millisecond, 3)
	require.NoError(t, err)
	defer sim.Stop()

	ch, err := sim.Start(context.Background())
	require.NoError(t, err)

	previous := -1
	for i := 0; i < 4; i++ {
		select {
		case minutes := <-ch:
			assert.GreaterOrEqual(t, minutes, previous)
			previous = minutes
		case <-time.After(time.Second):
			t.Fatal("no emission")
		}
	}

	// first value is the configured start
	assert.GreaterOrEqual(t, previous, 5)
}

func TestStopEndsEmissions(t *testing.T) {
	sim, err := queuetime.New(5, 5*time.Millisecond, 3)
	require.NoError(t, err)

	ch, err := sim.Start(context.Background())
	require.NoError(t, err)

	// observe at least one value, then stop
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no emission")
	}

	sim.Stop()

	// the channel drains and closes; nothing arrives afterwards
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel never closed")
		}
	}
}

func TestStopIsIdempotent(t *testing.T) {
	sim, err := queuetime.New(5, time.Minute, 3)
	require.NoError(t, err)

	_, err = sim.Start(context.Background())
	require.NoError(t, err)

	sim.Stop()
	sim.Stop()
}

func TestStartTwice(t *testing.T) {
	sim, err := queuetime.New(5, time.Minute, 3)
	require.NoError(t, err)
	defer sim.Stop()

	_, err = sim.Start(context.Background())
	require.NoError(t, err)

	_, err = sim.Start(context.Background())
	require.EqualError(t, err, "simulator already started")
}

func TestContextCancelStops(t *testing.T) {
	sim, err := queuetime.New(5, 5*time.Millisecond, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := sim.Start(ctx)
	require.NoError(t, err)

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel never closed after cancel")
		}
	}
}

func TestStopWithoutStart(t *testing.T) {
	sim, err := queuetime.New(5, time.Minute, 3)
	require.NoError(t, err)

	sim.Stop()
}
