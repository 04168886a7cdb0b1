package viewer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCountdownExpires(t *testing.T) {
	var ticks int32
	expired := make(chan struct{})

	StartCountdown(1, func(remaining int) {
		atomic.AddInt32(&ticks, 1)
	}, func() {
		close(expired)
	})

	select {
	case <-expired:
	case <-time.After(3 * time.Second):
		t.Fatal("countdown did not expire")
	}
	if atomic.LoadInt32(&ticks) == 0 {
		t.Error("no tick fired before expiry")
	}
}

func TestCountdownStopMidRun(t *testing.T) {
	ticks := make(chan int, 16)

	c := StartCountdown(10, func(remaining int) {
		ticks <- remaining
	}, nil)

	select {
	case <-ticks:
	case <-time.After(3 * time.Second):
		t.Fatal("no tick fired")
	}

	// Once Stop returns, no further tick may land.
	c.Stop()
	select {
	case r := <-ticks:
		t.Errorf("tick %d fired after stop returned", r)
	case <-time.After(2500 * time.Millisecond):
	}
}

func TestCountdownStopSuppressesCallbacks(t *testing.T) {
	var fired int32

	c := StartCountdown(2, func(remaining int) {
		atomic.AddInt32(&fired, 1)
	}, func() {
		atomic.AddInt32(&fired, 1)
	})

	c.Stop()
	c.Stop() // idempotent

	time.Sleep(3 * time.Second)
	if atomic.LoadInt32(&fired) != 0 {
		t.Error("callback fired after stop")
	}
}
