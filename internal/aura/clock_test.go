package aura

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualClock_FireOrder(t *testing.T) {
	clk := NewManualClock()
	var fired []int
	clk.AfterFunc(3*time.Second, func() { fired = append(fired, 3) })
	clk.AfterFunc(1*time.Second, func() { fired = append(fired, 1) })
	clk.AfterFunc(2*time.Second, func() { fired = append(fired, 2) })

	clk.Advance(5 * time.Second)

	want := []int{1, 2, 3}
	if len(fired) != len(want) {
		t.Fatalf("expected %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("expected due order %v, got %v", want, fired)
		}
	}
	if clk.Now() != 5*time.Second {
		t.Errorf("expected now=5s, got %v", clk.Now())
	}
}

func TestManualClock_Stop(t *testing.T) {
	clk := NewManualClock()
	fired := 0
	timer := clk.AfterFunc(1*time.Second, func() { fired++ })
	timer.Stop()

	clk.Advance(5 * time.Second)
	if fired != 0 {
		t.Errorf("stopped timer must not fire, fired %d times", fired)
	}
}

func TestManualClock_Repeating(t *testing.T) {
	clk := NewManualClock()
	fired := 0
	timer := clk.TickFunc(100*time.Millisecond, func() { fired++ })

	clk.Advance(350 * time.Millisecond)
	if fired != 3 {
		t.Fatalf("expected 3 fires in 350ms at 100ms interval, got %d", fired)
	}

	timer.Stop()
	clk.Advance(1 * time.Second)
	if fired != 3 {
		t.Errorf("stopped ticker must not fire again, got %d", fired)
	}
}

func TestManualClock_ArmDuringCallback(t *testing.T) {
	clk := NewManualClock()
	var fired []string
	clk.AfterFunc(1*time.Second, func() {
		fired = append(fired, "outer")
		clk.AfterFunc(1*time.Second, func() { fired = append(fired, "inner") })
	})

	clk.Advance(3 * time.Second)

	if len(fired) != 2 || fired[0] != "outer" || fired[1] != "inner" {
		t.Fatalf("timer armed mid-advance must fire in the same advance, got %v", fired)
	}
}

func TestWallClock_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	wallClock{}.AfterFunc(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot timer did not fire")
	}
}

func TestWallClock_TickFunc(t *testing.T) {
	var fired atomic.Int32
	timer := wallClock{}.TickFunc(20*time.Millisecond, func() { fired.Add(1) })

	deadline := time.After(2 * time.Second)
	for fired.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("repeating timer did not fire twice")
		case <-time.After(10 * time.Millisecond):
		}
	}

	timer.Stop()
	time.Sleep(250 * time.Millisecond)
	after := fired.Load()
	time.Sleep(250 * time.Millisecond)
	if fired.Load() != after {
		t.Error("ticker kept firing after Stop")
	}
}
