package time

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownClock indicates that ClockByName was given a name it does not
// recognize.
var ErrUnknownClock = errors.New("Unknown clock")

// Clock is a source of monotonic readings. Only the difference between two
// readings taken from the same Clock is meaningful; the absolute value of a
// reading carries no calendar semantics.
type Clock interface {
	Now() time.Time
}

// RealClock reads the Go runtime clock, whose readings carry a monotonic
// component unaffected by wall clock adjustments. It does not advance while the
// host is suspended.
type RealClock struct{}

var _ Clock = RealClock{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ClockByName resolves a configured clock name. The empty string and
// "monotonic" select RealClock, "boottime" selects BootClock.
func ClockByName(name string) (Clock, error) {
	switch name {
	case "", "monotonic":
		return RealClock{}, nil
	case "boottime":
		return BootClock{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClock, name)
	}
}
