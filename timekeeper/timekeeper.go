// Package timekeeper provides the time budget consulted by the anytime searchers.
package timekeeper

import "time"

// TimeKeeper holds a start instant and a threshold. It is read-only after construction.
type TimeKeeper struct {
	start     time.Time
	threshold time.Duration
	now       func() time.Time
}

// New starts a budget of threshold measured from now.
func New(threshold time.Duration) *TimeKeeper {
	return newWithClock(threshold, time.Now)
}

func newWithClock(threshold time.Duration, now func() time.Time) *TimeKeeper {
	return &TimeKeeper{
		start:     now(),
		threshold: threshold,
		now:       now,
	}
}

// IsTimeOver reports whether the elapsed time reached the threshold.
// A zero or negative threshold is always over.
func (tk *TimeKeeper) IsTimeOver() bool {
	return tk.Elapsed() >= tk.threshold
}

func (tk *TimeKeeper) Elapsed() time.Duration {
	return tk.now().Sub(tk.start)
}

// ElapsedSeconds returns the elapsed time in seconds.
func (tk *TimeKeeper) ElapsedSeconds() float64 {
	return tk.Elapsed().Seconds()
}

func (tk *TimeKeeper) Threshold() time.Duration {
	return tk.threshold
}
