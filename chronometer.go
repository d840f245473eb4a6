// Package chronometer measures elapsed monotonic time across start, pause and
// resume cycles, and records lap marks along the way.
package chronometer

import (
	"fmt"
	"strconv"
	"time"

	cmtime "github.com/nowlow/chronometer/time"
)

const notStarted = "<not started>"

// Chronometer accumulates elapsed time. It is FRESH until Start is called,
// then either RUNNING or PAUSED until Reset returns it to FRESH.
//
// A Chronometer is not safe for concurrent use; see Guarded.
type Chronometer struct {
	clock cmtime.Clock

	// runningSince is only meaningful while running is set.
	runningSince time.Time
	running      bool

	// accumulated is only meaningful while banked is set.
	accumulated time.Duration
	banked      bool

	laps    []time.Duration
	started bool
	paused  bool
}

// New returns a fresh Chronometer reading the runtime monotonic clock.
func New() *Chronometer {
	return NewWithClock(cmtime.RealClock{})
}

// NewWithClock returns a fresh Chronometer reading the given clock.
func NewWithClock(clock cmtime.Clock) *Chronometer {
	return &Chronometer{clock: clock}
}

func (c *Chronometer) now() time.Time {
	if nil == c.clock {
		return time.Now()
	}
	return c.clock.Now()
}

func (c *Chronometer) sinceRunning() time.Duration {
	return c.now().Sub(c.runningSince)
}

// Start begins measuring from now. While already running, the current interval
// is rebased to now and the time since the previous Start is dropped. After a
// Pause, the banked time is kept and counting resumes on top of it.
func (c *Chronometer) Start() {
	c.runningSince = c.now()
	c.running = true
	c.started = true
	c.paused = false
}

// Pause banks the current interval and stops counting. Pausing while already
// paused banks nothing more. Pausing a Chronometer that was never started only
// sets the paused flag.
func (c *Chronometer) Pause() {
	if c.running {
		elapsed := c.sinceRunning()
		if c.banked {
			c.accumulated += elapsed
		} else {
			c.accumulated = elapsed
			c.banked = true
		}
	}
	c.running = false
	c.runningSince = time.Time{}
	c.paused = true
}

// Lap records the time elapsed since the current interval began. Banked time
// from earlier intervals is not included. Lap does nothing unless running.
func (c *Chronometer) Lap() {
	if !c.running {
		return
	}
	c.laps = append(c.laps, c.sinceRunning())
}

// Reset discards all measured time and laps.
func (c *Chronometer) Reset() {
	c.runningSince = time.Time{}
	c.running = false
	c.accumulated = 0
	c.banked = false
	c.laps = nil
	c.started = false
	c.paused = false
}

// Duration returns the total elapsed time. ok is false when there is no
// meaningful elapsed time yet, which is distinct from a zero duration.
func (c *Chronometer) Duration() (d time.Duration, ok bool) {
	if !c.started {
		return 0, false
	}
	if c.paused {
		return c.accumulated, c.banked
	}
	if !c.running {
		return 0, false
	}
	d = c.sinceRunning()
	if c.banked {
		d += c.accumulated
	}
	return d, true
}

func (c *Chronometer) Started() bool {
	return c.started
}

func (c *Chronometer) Paused() bool {
	return c.paused
}

// Running reports whether time is being counted right now.
func (c *Chronometer) Running() bool {
	return c.running
}

// Laps returns a copy of the recorded laps, oldest first.
func (c *Chronometer) Laps() []time.Duration {
	laps := make([]time.Duration, len(c.laps))
	copy(laps, c.laps)
	return laps
}

// String renders the duration in whole milliseconds, or "<not started>".
func (c *Chronometer) String() string {
	d, ok := c.Duration()
	if !ok {
		return notStarted
	}
	return formatMillis(d)
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

// GoString is a diagnostic summary and is not meant to be parsed.
func (c *Chronometer) GoString() string {
	d, _ := c.Duration()
	return fmt.Sprintf(
		"Chronometer{started: %t, paused: %t, laps: %d, duration: %s}",
		c.started,
		c.paused,
		len(c.laps),
		d,
	)
}
