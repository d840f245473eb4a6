package time

import (
	"time"
)

// RealStopwatch is a Stopwatch reading an injectable Clock. A nil Clock means
// RealClock.
type RealStopwatch struct {
	Clock     Clock
	lastReset time.Time
	started   bool
}

var _ Stopwatch = new(RealStopwatch)

func (r *RealStopwatch) clock() Clock {
	if nil == r.Clock {
		return RealClock{}
	}
	return r.Clock
}

func (r *RealStopwatch) Reset() error {
	r.lastReset = r.clock().Now()
	r.started = true
	return nil
}

func (r *RealStopwatch) Elapsed() (time.Duration, error) {
	if !r.started {
		return 0, ErrNotStarted
	}
	return r.clock().Now().Sub(r.lastReset), nil
}
