package game

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeClock fires schedules only when Advance is called.
type fakeClock struct {
	schedules []*fakeSchedule
	sync.Mutex
}

type fakeSchedule struct {
	fn        func()
	cancelled bool
}

func (c *fakeClock) Every(_ time.Duration, fn func()) func() {
	c.Lock()
	defer c.Unlock()
	s := &fakeSchedule{fn: fn}
	c.schedules = append(c.schedules, s)
	return func() {
		c.Lock()
		defer c.Unlock()
		s.cancelled = true
	}
}

// Advance fires every live schedule n times, one round per simulated period.
func (c *fakeClock) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, s := range c.live() {
			s.fn()
		}
	}
}

func (c *fakeClock) live() []*fakeSchedule {
	c.Lock()
	defer c.Unlock()
	var out []*fakeSchedule
	for _, s := range c.schedules {
		if !s.cancelled {
			out = append(out, s)
		}
	}
	return out
}

func (c *fakeClock) liveCount() int {
	return len(c.live())
}

// last returns the most recent schedule, cancelled or not.
func (c *fakeClock) last() *fakeSchedule {
	c.Lock()
	defer c.Unlock()
	if len(c.schedules) == 0 {
		return nil
	}
	return c.schedules[len(c.schedules)-1]
}

func TestSystemClock(t *testing.T) {
	var fired atomic.Int32
	cancel := SystemClock().Every(5*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() >= 2 }, time.Second, time.Millisecond)

	cancel()
	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := fired.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, fired.Load())
}

func TestCountdown(t *testing.T) {
	clock := &fakeClock{}
	token := uuid.New()

	var got []uuid.UUID
	c := startCountdown(clock, time.Second, token, func(id uuid.UUID) { got = append(got, id) })
	assert.Equal(t, token, c.Token())

	clock.Advance(2)
	assert.Equal(t, []uuid.UUID{token, token}, got)

	c.Stop()
	c.Stop()
	clock.Advance(3)
	assert.Len(t, got, 2)

	var none *Countdown
	assert.NotPanics(t, none.Stop)
	assert.Equal(t, uuid.Nil, none.Token())
}
