// Package queuetime simulates polling a queue-length service: a periodic,
// non-decreasing "minutes remaining" feed that runs only while someone is
// watching it.
package queuetime

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Simulator emits minutes-remaining values on a channel: the initial value
// immediately, then a random increment of [1, maxIncrement] per interval.
// A Simulator runs once; create a new one for every mount of the screen.
type Simulator struct {
	initial      int
	interval     time.Duration
	maxIncrement int

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(initialMinutes int, interval time.Duration, maxIncrement int) (*Simulator, error) {
	if initialMinutes < 0 {
		return nil, fmt.Errorf("initial minutes must not be negative, got %d", initialMinutes)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if maxIncrement <= 0 {
		return nil, fmt.Errorf("max increment must be positive, got %d", maxIncrement)
	}

	return &Simulator{
		initial:      initialMinutes,
		interval:     interval,
		maxIncrement: maxIncrement,
		done:         make(chan struct{}),
	}, nil
}

// Start launches the feed. The returned channel is closed once the simulator
// stops, via Stop or ctx cancellation; no value is ever emitted after that.
func (s *Simulator) Start(ctx context.Context) (<-chan int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil, fmt.Errorf("simulator already started")
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	ch := make(chan int, 1)

	go s.run(ctx, ch)

	return ch, nil
}

// Stop halts the feed and waits until the emitting goroutine has exited, so
// callers observe no late updates.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	started := s.started
	s.mu.Unlock()

	if !started {
		return
	}

	cancel()
	<-s.done
}

func (s *Simulator) run(ctx context.Context, ch chan<- int) {
	defer close(s.done)
	defer close(ch)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	minutes := s.initial

	select {
	case ch <- minutes:
	case <-ctx.Done():
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			minutes += rand.IntN(s.maxIncrement) + 1
			select {
			case ch <- minutes:
			case <-ctx.Done():
				return
			}
		}
	}
}
