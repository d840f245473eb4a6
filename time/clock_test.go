package time_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmtime "github.com/nowlow/chronometer/time"
	"github.com/nowlow/chronometer/time/testutil"
)

func TestClockByName(t *testing.T) {
	for _, name := range []string{"", "monotonic"} {
		c, err := cmtime.ClockByName(name)
		require.NoError(t, err)
		assert.Equal(t, cmtime.RealClock{}, c)
	}

	c, err := cmtime.ClockByName("boottime")
	require.NoError(t, err)
	assert.Equal(t, cmtime.BootClock{}, c)

	_, err = cmtime.ClockByName("sundial")
	assert.True(t, errors.Is(err, cmtime.ErrUnknownClock))
}

func TestBootClockDoesNotGoBackwards(t *testing.T) {
	var c cmtime.BootClock

	first := c.Now()
	time.Sleep(5 * time.Millisecond)
	second := c.Now()

	assert.True(t, second.Sub(first) >= 0)
}

func TestRealStopwatchNotStarted(t *testing.T) {
	var s cmtime.RealStopwatch

	_, err := s.Elapsed()
	assert.Equal(t, cmtime.ErrNotStarted, err)
}

func TestRealStopwatchElapsed(t *testing.T) {
	clock := testutil.NewFakeClock()
	s := cmtime.RealStopwatch{Clock: clock}

	require.NoError(t, s.Reset())
	clock.Advance(250 * time.Millisecond)

	elapsed, err := s.Elapsed()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, elapsed)

	require.NoError(t, s.Reset())
	clock.Advance(time.Second)

	elapsed, err = s.Elapsed()
	require.NoError(t, err)
	assert.Equal(t, time.Second, elapsed)
}
