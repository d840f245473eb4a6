package time

import (
	"errors"
	"time"
)

// ErrNotStarted is returned by a Stopwatch asked for its elapsed time before it
// has ever been started.
var ErrNotStarted = errors.New("Stopwatch has not been started")

// Stopwatch measures the time elapsed since its most recent Reset. Reset is
// expected to (re)start the measurement, and Elapsed should return
// ErrNotStarted if there is nothing meaningful to report yet.
type Stopwatch interface {
	Reset() error
	Elapsed() (time.Duration, error)
}
