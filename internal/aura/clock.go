package aura

import (
	"context"
	"sync"
	"time"
)

// Clock schedules timer callbacks for the lifecycle of effect instances.
// Both timer kinds must be cancelable via the returned handle. A callback
// that was already in flight when Stop returned is tolerated: the manager
// re-checks registration before acting on any fire.
type Clock interface {
	// AfterFunc schedules fn to run once after d.
	AfterFunc(d time.Duration, fn func()) Timer
	// TickFunc schedules fn to run every d until the handle is stopped.
	TickFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancelable handle for a scheduled callback.
type Timer interface {
	Stop()
}

// wallClock schedules on real time. AfterFunc delegates to the runtime
// timer; TickFunc runs a goroutine with a ticker cancelled via context.
type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := time.AfterFunc(d, fn)
	return stopFunc(func() { t.Stop() })
}

func (wallClock) TickFunc(d time.Duration, fn func()) Timer {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return stopFunc(cancel)
}

type stopFunc func()

func (f stopFunc) Stop() { f() }

// ManualClock is a Clock driven explicitly by the host, for game loops
// that advance time per frame and for deterministic tests. Timers fire
// synchronously inside Advance, in due order; ties fire in the order the
// timers were armed.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clk      *ManualClock
	due      time.Duration
	interval time.Duration // 0 for one-shot
	fn       func()
	stopped  bool
}

func (t *manualTimer) Stop() {
	t.clk.mu.Lock()
	t.stopped = true
	t.clk.mu.Unlock()
}

// NewManualClock creates a manual clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the clock's current time as an offset from its creation.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc implements Clock.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	return c.arm(d, 0, fn)
}

// TickFunc implements Clock.
func (c *ManualClock) TickFunc(d time.Duration, fn func()) Timer {
	return c.arm(d, d, fn)
}

func (c *ManualClock) arm(d, interval time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTimer{clk: c, due: c.now + d, interval: interval, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every due timer in order.
// Callbacks run without the clock lock held, so they may arm or stop
// timers; timers armed by a callback fire within the same Advance if they
// come due before its end.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		t := c.nextDue(target)
		if t == nil {
			c.now = target
			c.compact()
			c.mu.Unlock()
			return
		}
		c.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.stopped = true
		}
		fn := t.fn
		c.mu.Unlock()
		fn()
		c.mu.Lock()
	}
}

// nextDue returns the earliest unstopped timer due at or before target,
// preferring arm order on ties. Must be called with mu held.
func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range c.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}

// compact drops stopped timers. Must be called with mu held.
func (c *ManualClock) compact() {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			c.timers[n] = t
			n++
		}
	}
	c.timers = c.timers[:n]
}
