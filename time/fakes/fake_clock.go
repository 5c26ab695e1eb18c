package fakes

import (
	"time"

	"code.cloudfoundry.org/clock"
)

// FakeClock is a deterministic clock for tests. Sleep records the requested
// duration and advances the current time immediately, so wall-clock polling
// loops run to their deadline without real delay and without goroutines.
type FakeClock struct {
	CurrentTime    time.Time
	SleptDurations []time.Duration
}

func NewFakeClock() *FakeClock {
	return &FakeClock{
		CurrentTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (c *FakeClock) Now() time.Time { return c.CurrentTime }

func (c *FakeClock) Sleep(d time.Duration) {
	c.SleptDurations = append(c.SleptDurations, d)
	c.CurrentTime = c.CurrentTime.Add(d)
}

func (c *FakeClock) Since(t time.Time) time.Duration {
	return c.CurrentTime.Sub(t)
}

// After returns a channel that never fires. Callers under test race it
// against a process wait channel, and the tests always resolve the wait
// side first.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	return make(chan time.Time, 1)
}

func (c *FakeClock) NewTimer(d time.Duration) clock.Timer {
	panic("not implemented")
}

func (c *FakeClock) NewTicker(d time.Duration) clock.Ticker {
	panic("not implemented")
}
