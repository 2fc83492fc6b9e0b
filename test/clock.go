package test

import (
	"sync"
	"time"

	"github.com/loilo-inc/spinkit/types"
)

// FakeClock hands out tickers and timers that only fire when told to.
type FakeClock struct {
	mu      sync.Mutex
	tickers []*FakeTicker
	timers  []*FakeTimer
	created chan *FakeTicker
}

var _ types.Clock = (*FakeClock)(nil)

func NewFakeClock() *FakeClock {
	return &FakeClock{created: make(chan *FakeTicker, 64)}
}

func (c *FakeClock) NewTicker(d time.Duration) types.Ticker {
	t := &FakeTicker{Interval: d, c: make(chan time.Time), stopCh: make(chan struct{})}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	c.created <- t
	return t
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) types.Timer {
	t := &FakeTimer{Delay: d, f: f}
	c.mu.Lock()
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	return t
}

// WaitTicker blocks until the next ticker is created or the wait times out.
func (c *FakeClock) WaitTicker(wait time.Duration) (*FakeTicker, bool) {
	select {
	case t := <-c.created:
		return t, true
	case <-time.After(wait):
		return nil, false
	}
}

func (c *FakeClock) Tickers() []*FakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*FakeTicker(nil), c.tickers...)
}

func (c *FakeClock) Timers() []*FakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*FakeTimer(nil), c.timers...)
}

// ActiveTickers counts tickers that were created and not stopped.
func (c *FakeClock) ActiveTickers() int {
	n := 0
	for _, t := range c.Tickers() {
		if !t.Stopped() {
			n++
		}
	}
	return n
}

type FakeTicker struct {
	Interval time.Duration
	c        chan time.Time
	mu       sync.Mutex
	stopped  bool
	stopCh   chan struct{}
}

func (t *FakeTicker) C() <-chan time.Time {
	return t.c
}

func (t *FakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.stopped = true
		close(t.stopCh)
	}
}

func (t *FakeTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Tick delivers one tick and reports whether a receiver took it.
func (t *FakeTicker) Tick() bool {
	select {
	case <-t.stopCh:
		return false
	default:
	}
	select {
	case t.c <- time.Now():
		return true
	case <-t.stopCh:
		return false
	}
}

type FakeTimer struct {
	Delay   time.Duration
	f       func()
	mu      sync.Mutex
	stopped bool
	fired   bool
}

func (t *FakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Fire runs the callback on the calling goroutine unless the timer was stopped.
func (t *FakeTimer) Fire() bool {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	t.mu.Unlock()
	t.f()
	return true
}
