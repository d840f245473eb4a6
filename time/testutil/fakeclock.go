package testutil

import (
	"sync"
	"time"

	cmtime "github.com/nowlow/chronometer/time"
)

// FakeClock is a Clock that only moves when told to.
type FakeClock struct {
	now time.Time
	mtx sync.Mutex
}

func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

func (f *FakeClock) Now() time.Time {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	return f.now
}

func (f *FakeClock) Advance(d time.Duration) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	f.now = f.now.Add(d)
}

var _ cmtime.Clock = new(FakeClock)
