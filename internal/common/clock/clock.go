package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/fortunabot/fortuna/internal/common/clock Clock

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is a rearmable deferred call.
type Timer interface {
	Reset(d time.Duration) bool
	Stop() bool
}

// Clock abstracts wall time so timed behavior is injectable.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	NewTicker(d time.Duration) Ticker
	AfterFunc(d time.Duration, f func()) Timer
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// After waits for the duration to elapse
func (c *DefaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// NewTicker returns a ticker backed by time.Ticker
func (c *DefaultClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

// AfterFunc runs f after the duration elapses
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}
