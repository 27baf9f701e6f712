package moss

import "time"

// Clock schedules simulation steps at a fixed rate, independent of how often
// the host loop polls it. At most one step fires per poll, so a stall never
// produces a burst of catch-up steps; in steady state the scheduled time
// advances by exactly one interval per step, which keeps the long-run rate
// drift-free even when polls land slightly late.
type Clock struct {
	interval time.Duration
	next     time.Time
	paused   bool
}

// NewClock creates a clock firing updatesPerSecond times per second.
// Non-positive rates fall back to 60.
func NewClock(updatesPerSecond int) *Clock {
	if updatesPerSecond <= 0 {
		updatesPerSecond = 60
	}
	return &Clock{interval: time.Second / time.Duration(updatesPerSecond)}
}

// Interval returns the configured step period.
func (c *Clock) Interval() time.Duration { return c.interval }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// SetPaused pauses or resumes the clock. A paused clock keeps consuming
// intervals so resuming does not replay the paused span.
func (c *Clock) SetPaused(paused bool) { c.paused = paused }

// TogglePaused flips the pause state and returns the new value.
func (c *Clock) TogglePaused() bool {
	c.paused = !c.paused
	return c.paused
}

// Poll reports whether a simulation step is due at the given time. The first
// poll schedules the clock and returns false. When a step is due, the
// scheduled time advances by one interval; if it would still lag now by a
// full interval or more (the host stalled), it resynchronizes to now instead
// of replaying the missed steps. A due step on a paused clock is consumed
// but reported as false.
func (c *Clock) Poll(now time.Time) bool {
	if c.next.IsZero() {
		c.next = now.Add(c.interval)
		return false
	}
	if now.Before(c.next) {
		return false
	}
	c.next = c.next.Add(c.interval)
	// next has already advanced one interval past the due time. If it still
	// trails now by a full interval (now >= next+interval), the host stalled;
	// restart the schedule from now instead of replaying the backlog.
	if now.Sub(c.next) >= c.interval {
		c.next = now.Add(c.interval)
	}
	return !c.paused
}
