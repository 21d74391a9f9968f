package timekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestIsTimeOver(t *testing.T) {
	t.Run("zero threshold is over immediately", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(0, 0)}
		tk := newWithClock(0, clock.Now)

		require.True(t, tk.IsTimeOver(), "Zero budget should be exhausted before any work")
	})

	t.Run("over once elapsed reaches threshold", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(0, 0)}
		tk := newWithClock(10*time.Millisecond, clock.Now)

		require.False(t, tk.IsTimeOver(), "Budget should not be exhausted at start")
		clock.advance(9 * time.Millisecond)
		require.False(t, tk.IsTimeOver(), "Budget should not be exhausted before threshold")
		clock.advance(time.Millisecond)
		require.True(t, tk.IsTimeOver(), "Budget should be exhausted at threshold")
	})

	t.Run("real clock with a long threshold", func(t *testing.T) {
		tk := New(time.Hour)

		require.False(t, tk.IsTimeOver())
		require.Equal(t, time.Hour, tk.Threshold())
	})
}

func TestElapsedSeconds(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	tk := newWithClock(time.Second, clock.Now)

	clock.advance(1500 * time.Millisecond)

	require.InDelta(t, 1.5, tk.ElapsedSeconds(), 1e-9)
	require.Equal(t, 1500*time.Millisecond, tk.Elapsed())
}
