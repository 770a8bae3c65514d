package game

import (
	"context"
	"testing"
	"time"

	"kennel-tycoon/internal/platform/logger"
)

func TestClock_SpeedScalesDayLength(t *testing.T) {
	svc, repo := newTestService(t)
	seed(t, repo, nil)
	repo.bySlot["fast"] = repo.bySlot[slot].Clone()
	fast := repo.bySlot["fast"]
	fast.Speed = 5
	repo.bySlot["fast"] = fast

	c := NewClock(svc, time.Minute, logger.Nop())
	ctx := context.Background()

	// 10 pasos = un día base
	for i := 0; i < clockSteps; i++ {
		c.advance(ctx)
	}

	if got := repo.bySlot[slot].Day; got != 11 {
		t.Fatalf("1x: expected day 11, got %d", got)
	}
	if got := repo.bySlot["fast"].Day; got != 15 {
		t.Fatalf("5x: expected day 15, got %d", got)
	}
}

func TestClock_SpeedChangeAppliesOnNextStep(t *testing.T) {
	svc, repo := newTestService(t)
	seed(t, repo, nil)

	c := NewClock(svc, time.Minute, logger.Nop())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		c.advance(ctx)
	}
	if _, err := svc.SetSpeed(ctx, slot, 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// 4 pasos a 1x + 3 a 2x = 10
	var ticked []string
	for i := 0; i < 3; i++ {
		ticked = append(ticked, c.advance(ctx)...)
	}
	if len(ticked) != 1 || repo.bySlot[slot].Day != 11 {
		t.Fatalf("expected one day after speed change, ticked=%v day=%d", ticked, repo.bySlot[slot].Day)
	}
}

func TestClock_RunStopsOnCancel(t *testing.T) {
	svc, repo := newTestService(t)
	seed(t, repo, nil)

	c := NewClock(svc, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		svc.mu.Lock()
		day := repo.bySlot[slot].Day
		svc.mu.Unlock()
		if day > 10 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("clock never advanced")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
