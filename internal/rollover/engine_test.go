package rollover

import (
	"testing"
	"time"
)

func TestNextMidnight(t *testing.T) {
	now := time.Date(2024, 1, 5, 23, 59, 30, 0, time.UTC)
	got := nextMidnight(now)
	want := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("next midnight = %v, want %v", got, want)
	}

	early := time.Date(2024, 1, 5, 0, 0, 0, 1, time.UTC)
	if got := nextMidnight(early); !got.Equal(want) {
		t.Fatalf("next midnight just after midnight = %v, want %v", got, want)
	}
}

func TestEngineEmitsCrossoverEvent(t *testing.T) {
	// Clock parked a hair before midnight so the timer fires immediately.
	base := time.Date(2024, 1, 5, 23, 59, 59, int(time.Second)-int(time.Millisecond), time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	}

	engine := NewEngine(4, WithClock(clock))
	engine.Start()
	defer engine.Stop()

	select {
	case ev := <-engine.C():
		if ev.ClosedDate != "2024-01-05" {
			t.Fatalf("closed date = %s, want 2024-01-05", ev.ClosedDate)
		}
		if ev.NewDate != "2024-01-06" {
			t.Fatalf("new date = %s, want 2024-01-06", ev.NewDate)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rollover event")
	}
}

func TestEngineStopIsIdempotentAndPrompt(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()

	done := make(chan struct{})
	go func() {
		engine.Stop()
		engine.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return promptly")
	}

	if _, ok := <-engine.C(); ok {
		t.Fatal("expected output channel closed after stop")
	}
}

func TestEngineStartTwiceIsNoop(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Start()
	engine.Stop()
}
