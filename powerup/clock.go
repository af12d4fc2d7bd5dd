package powerup

import "time"

// Source provides the current wall time.
type Source interface {
	Now() time.Time
}

// SystemSource reads the system clock.
type SystemSource struct{}

// Now returns time.Now().
func (SystemSource) Now() time.Time { return time.Now() }

// ManualSource is a Source that only moves when advanced. The zero value
// starts at the zero time.
type ManualSource struct {
	now time.Time
}

// NewManualSource returns a source starting at start.
func NewManualSource(start time.Time) *ManualSource {
	return &ManualSource{now: start}
}

// Now returns the current manual time.
func (m *ManualSource) Now() time.Time { return m.now }

// Advance moves the source forward by d.
func (m *ManualSource) Advance(d time.Duration) { m.now = m.now.Add(d) }

// Clock reports elapsed effect time.
type Clock interface {
	Now() time.Duration
}

// PausableClock follows a Source but excludes intervals spent paused, so
// effect countdowns freeze while the simulation is paused.
type PausableClock struct {
	src         Source
	start       time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
}

// NewPausableClock returns a running clock reading zero at the source's
// current time.
func NewPausableClock(src Source) *PausableClock {
	return &PausableClock{src: src, start: src.Now()}
}

// Now returns elapsed unpaused time since the clock started.
func (c *PausableClock) Now() time.Duration {
	end := c.src.Now()
	if c.paused {
		end = c.pausedAt
	}
	return end.Sub(c.start) - c.pausedTotal
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.src.Now()
}

// Resume continues a paused clock. Resuming a running clock is a no-op.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.src.Now().Sub(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool { return c.paused }

// Reset restarts the clock at zero in the running state.
func (c *PausableClock) Reset() {
	c.start = c.src.Now()
	c.pausedTotal = 0
	c.paused = false
}
