package viewer

import (
	"sync"
	"time"
)

// Countdown drives the per-question timer. Stop is idempotent and guarantees
// no tick or expiry callback fires afterwards: callbacks run under the mutex,
// so Stop blocks until an in-flight callback returns. Callbacks must not call
// Stop.
type Countdown struct {
	mu      sync.Mutex
	stopCh  chan struct{}
	stopped bool
}

func StartCountdown(seconds int, onTick func(remaining int), onExpire func()) *Countdown {
	c := &Countdown{stopCh: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		remaining := seconds
		for remaining > 0 {
			select {
			case <-c.stopCh:
				return
			case <-ticker.C:
				remaining--
				c.mu.Lock()
				if c.stopped {
					c.mu.Unlock()
					return
				}
				if onTick != nil {
					onTick(remaining)
				}
				c.mu.Unlock()
			}
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.stopped && onExpire != nil {
			onExpire()
		}
	}()

	return c
}

func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stopCh)
}
