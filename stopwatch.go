package chronometer

import (
	"time"

	cmtime "github.com/nowlow/chronometer/time"
)

// ErrNotStarted is returned by the Stopwatch view of a Chronometer whose
// duration is unset.
var ErrNotStarted = cmtime.ErrNotStarted

type stopwatch struct {
	c *Chronometer
}

var _ cmtime.Stopwatch = stopwatch{}

// Stopwatch exposes the Chronometer through the cmtime.Stopwatch interface.
// Reset on the returned value resets the Chronometer and starts it again.
func (c *Chronometer) Stopwatch() cmtime.Stopwatch {
	return stopwatch{c}
}

func (s stopwatch) Reset() error {
	s.c.Reset()
	s.c.Start()
	return nil
}

func (s stopwatch) Elapsed() (time.Duration, error) {
	d, ok := s.c.Duration()
	if !ok {
		return 0, ErrNotStarted
	}
	return d, nil
}
