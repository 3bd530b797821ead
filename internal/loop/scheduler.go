// Package loop drives a game at a fixed tick rate without a front end.
package loop

import (
	"context"
	"time"
)

// Scheduler runs Update then Render once per tick.
type Scheduler struct {
	Interval time.Duration

	// Update advances the simulation. Returning false stops Run.
	Update func() bool

	// Render paints the current state. Optional.
	Render func()

	ticks uint64
}

// New creates a scheduler ticking at interval.
func New(interval time.Duration, update func() bool, render func()) *Scheduler {
	return &Scheduler{
		Interval: interval,
		Update:   update,
		Render:   render,
	}
}

// Once executes a single tick. It reports whether the loop should continue.
func (s *Scheduler) Once() bool {
	s.ticks++
	more := true
	if s.Update != nil {
		more = s.Update()
	}
	if s.Render != nil {
		s.Render()
	}
	return more
}

// Run ticks until the context is cancelled or Update returns false.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.Once() {
				return nil
			}
		}
	}
}

// RunFor executes n ticks back to back, ignoring Interval. It stops early
// when the context is cancelled or Update returns false.
func (s *Scheduler) RunFor(ctx context.Context, n uint64) error {
	for i := uint64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Once() {
			return nil
		}
	}
	return nil
}

// Ticks returns the number of ticks executed so far.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
