// Package timer estimates the time left in a loop from the average time per
// completed iteration.
package timer

import (
	"fmt"
	"math"
	"time"
)

// Placeholder is returned while no estimate can be made yet.
const Placeholder = "--:--:--"

// Timer measures progress against a fixed number of iterations.
type Timer struct {
	total      int
	indexStart int
	start      time.Time
	now        func() time.Time
}

// Option configures a Timer.
type Option func(*Timer)

// WithIndexStart sets the index the loop counter starts at.
// Default: 0
func WithIndexStart(i int) Option {
	return func(t *Timer) { t.indexStart = i }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// New starts a timer for total iterations.
func New(total int, opts ...Option) *Timer {
	t := &Timer{total: total, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	t.start = t.now()
	return t
}

// Total is the iteration count the timer was created for.
func (t *Timer) Total() int { return t.total }

// Remaining estimates the time left after completed iterations as
// HH:MM:SS, rounded to the nearest second.
func (t *Timer) Remaining(completed int) string {
	if completed == t.indexStart || completed <= 0 {
		return Placeholder
	}

	elapsed := t.now().Sub(t.start).Seconds()
	perIter := elapsed / float64(completed)
	remaining := perIter * float64(t.total-completed)
	return FormatSeconds(math.Round(remaining))
}

// Elapsed formats the time since the timer started.
func (t *Timer) Elapsed() string {
	return FormatSeconds(math.Round(t.now().Sub(t.start).Seconds()))
}

// FormatSeconds renders seconds as HH:MM:SS. Hours are zero-padded to two
// digits and keep counting past a day. Negative input is treated as zero.
func FormatSeconds(seconds float64) string {
	s := int64(math.Max(seconds, 0))
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}
