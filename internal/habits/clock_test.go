package habits

import (
	"sync"
	"time"
)

// fakeClock drives the debounce deterministically in tests.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	mu       sync.Mutex
	deadline time.Time
	fn       func()
	stopped  bool
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{deadline: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

// Advance moves the clock forward and fires every due, unstopped timer.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	pending := c.timers
	c.timers = nil
	c.mu.Unlock()

	var fire, keep []*fakeTimer
	for _, t := range pending {
		t.mu.Lock()
		switch {
		case t.stopped:
		case t.deadline.After(now):
			keep = append(keep, t)
		default:
			t.stopped = true
			fire = append(fire, t)
		}
		t.mu.Unlock()
	}

	c.mu.Lock()
	c.timers = append(keep, c.timers...)
	c.mu.Unlock()

	for _, t := range fire {
		t.fn()
	}
}
