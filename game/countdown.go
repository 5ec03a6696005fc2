package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock schedules fn to run every period until the returned cancel func is
// called. Cancel must be idempotent.
type Clock interface {
	Every(period time.Duration, fn func()) (cancel func())
}

// SystemClock returns a Clock backed by time.Ticker.
func SystemClock() Clock {
	return tickerClock{}
}

type tickerClock struct{}

// Every implements Clock. Each schedule owns one goroutine that exits on cancel.
func (tickerClock) Every(period time.Duration, fn func()) func() {
	ticker := time.NewTicker(period)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// Countdown is a cancellable periodic task bound to one session token. Every
// tick it fires carries that token so the receiver can discard ticks that
// belong to a session it has already replaced.
type Countdown struct {
	token  uuid.UUID
	cancel func()
}

func startCountdown(clock Clock, period time.Duration, token uuid.UUID, onTick func(uuid.UUID)) *Countdown {
	return &Countdown{
		token:  token,
		cancel: clock.Every(period, func() { onTick(token) }),
	}
}

// Token returns the session token the countdown is bound to.
func (c *Countdown) Token() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}
	return c.token
}

// Stop cancels the countdown. It is safe to call on a nil or stopped Countdown.
func (c *Countdown) Stop() {
	if c == nil || c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel = nil
}
