package session

import (
	"sync"
	"time"
)

// Clock periodically derives a session's local wall time and delivers it to
// a sink, without re-fetching any data. It is restartable: Start on a
// running clock stops the previous run first. The owner (Manager) stops it
// whenever the session is cleared or replaced, so a tick can never reference
// a dead session.
type Clock struct {
	// Now supplies the current instant on each tick. Defaults to time.Now;
	// tests substitute a fixed source.
	Now func() time.Time

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewClock returns a stopped clock ticking on real time.
func NewClock() *Clock {
	return &Clock{Now: time.Now}
}

// Start begins delivering sess.LocalTime(now) to sink once per interval,
// with one immediate delivery so the display never waits a full interval.
// The returned channel is closed when the clock stops, letting streaming
// consumers unblock.
func (c *Clock) Start(sess *Session, interval time.Duration, sink func(string)) <-chan struct{} {
	c.Stop()

	c.mu.Lock()
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop = stop
	c.done = done
	now := c.Now
	c.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		sink(sess.LocalTime(now()))
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				sink(sess.LocalTime(now()))
			}
		}
	}()
	return done
}

// Stop cancels the periodic delivery and waits for the tick goroutine to
// exit. Stopping a stopped clock is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}

// Running reports whether a tick loop is active.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}
