//go:build !linux

package time

import (
	"time"
)

// BootClock falls back to the runtime monotonic clock on platforms without
// CLOCK_BOOTTIME.
type BootClock struct{}

var _ Clock = BootClock{}

func (BootClock) Now() time.Time {
	return time.Now()
}
