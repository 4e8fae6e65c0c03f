package rrt

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/atomic"
)

// Cancel is the cooperative cancellation handle of spec.md §5: checked at
// iteration boundaries, never mid-iteration. It is built on clock.Clock
// rather than calling time.Now/time.After directly so deadline behavior is
// deterministically testable with clock.NewMock, the way benbjohnson/clock
// is meant to be used.
type Cancel struct {
	clk       clock.Clock
	deadline  time.Time
	requested *atomic.Bool
}

// NewCancel builds a handle with no deadline and no cooperative stop
// requested; WithDeadline and Stop configure it further.
func NewCancel() *Cancel {
	return &Cancel{clk: clock.New(), requested: atomic.NewBool(false)}
}

// WithClock overrides the clock implementation (tests use clock.NewMock()).
func (c *Cancel) WithClock(clk clock.Clock) *Cancel {
	c.clk = clk
	return c
}

// WithDeadline sets an absolute stop time.
func (c *Cancel) WithDeadline(t time.Time) *Cancel {
	c.deadline = t
	return c
}

// Stop cooperatively requests cancellation; safe to call concurrently with
// a running plan().
func (c *Cancel) Stop() {
	c.requested.Store(true)
}

// Done reports whether the handle has fired, by deadline or explicit Stop.
func (c *Cancel) Done() bool {
	if c == nil {
		return false
	}
	if c.requested.Load() {
		return true
	}
	if !c.deadline.IsZero() && !c.clk.Now().Before(c.deadline) {
		return true
	}
	return false
}
