package loop

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestOnceUpdatesBeforeRender(t *testing.T) {
	var calls []string
	s := New(time.Millisecond,
		func() bool { calls = append(calls, "update"); return true },
		func() { calls = append(calls, "render") },
	)

	s.Once()
	s.Once()

	expected := []string{"update", "render", "update", "render"}
	if !slices.Equal(calls, expected) {
		t.Errorf("calls = %v, expected %v", calls, expected)
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", s.Ticks())
	}
}

func TestOnceWithoutRender(t *testing.T) {
	n := 0
	s := New(time.Millisecond, func() bool { n++; return true }, nil)

	if !s.Once() {
		t.Error("Once() = false, expected true")
	}
	if n != 1 {
		t.Errorf("updates = %d, expected 1", n)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	s := New(time.Millisecond, func() bool {
		n++
		if n == 3 {
			cancel()
		}
		return true
	}, nil)

	err := s.Run(ctx)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if n != 3 {
		t.Errorf("updates = %d, expected 3", n)
	}
}

func TestRunStopsWhenUpdateDeclines(t *testing.T) {
	n := 0
	s := New(time.Millisecond, func() bool { n++; return n < 5 }, nil)

	if err := s.Run(context.Background()); err != nil {
		t.Errorf("Run() = %v, expected nil", err)
	}
	if n != 5 {
		t.Errorf("updates = %d, expected 5", n)
	}
}

func TestRunFor(t *testing.T) {
	n := 0
	s := New(time.Hour, func() bool { n++; return true }, nil)

	if err := s.RunFor(context.Background(), 100); err != nil {
		t.Fatalf("RunFor() = %v, expected nil", err)
	}
	if n != 100 || s.Ticks() != 100 {
		t.Errorf("updates = %d, ticks = %d, expected 100", n, s.Ticks())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.RunFor(ctx, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("RunFor(cancelled) = %v, expected context.Canceled", err)
	}
	if n != 100 {
		t.Errorf("updates after cancelled RunFor = %d, expected 100", n)
	}
}
