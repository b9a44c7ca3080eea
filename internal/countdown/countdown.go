// Package countdown implements the remaining-time breakdown and the
// anniversary calendar arithmetic.
package countdown

import (
	"context"
	"errors"
	"time"

	"github.com/and161185/moment-keeper/internal/model"
)

const (
	msSecond = int64(time.Second / time.Millisecond)
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
)

// Until splits the time from now to target into days, hours, minutes and seconds.
// A target at or before now yields the zero Countdown.
func Until(target, now time.Time) model.Countdown {
	ms := target.Sub(now).Milliseconds()
	if ms <= 0 {
		return model.Countdown{}
	}
	return model.Countdown{
		Days:    ms / msDay,
		Hours:   ms % msDay / msHour,
		Minutes: ms % msHour / msMinute,
		Seconds: ms % msMinute / msSecond,
	}
}

// NextOccurrence returns the anniversary's month and day in today's year, or in
// the following year when that date is not after today. On the anniversary day
// itself the countdown therefore already targets the next year, matching a
// comparison of the midnight date against the current instant. Comparison is by
// calendar date in today's location; the result is midnight in that location.
// Feb 29 normalises to Mar 1 in non-leap years.
func NextOccurrence(anniversary, today time.Time) time.Time {
	loc := today.Location()
	_, am, ad := anniversary.Date()
	ty, tm, td := today.Date()

	start := time.Date(ty, tm, td, 0, 0, 0, 0, loc)
	next := time.Date(ty, am, ad, 0, 0, 0, 0, loc)
	if !next.After(start) {
		next = time.Date(ty+1, am, ad, 0, 0, 0, 0, loc)
	}
	return next
}

// YearsElapsed returns the number of full years from anniversary to today, never negative.
func YearsElapsed(anniversary, today time.Time) int {
	ay, am, ad := anniversary.Date()
	ty, tm, td := today.Date()

	years := ty - ay
	if tm < am || (tm == am && td < ad) {
		years--
	}
	return max(years, 0)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// ErrBadInterval is returned by Watch for a non-positive interval.
var ErrBadInterval = errors.New("countdown: interval must be positive")

// Watch calls fn with the countdown to target right away and then once per
// interval until ctx is done or fn returns an error. The ticker is released
// before Watch returns. The returned error is ctx.Err() or fn's error.
func Watch(ctx context.Context, clock Clock, target time.Time, interval time.Duration, fn func(model.Countdown) error) error {
	if interval <= 0 {
		return ErrBadInterval
	}
	if clock == nil {
		clock = SystemClock
	}
	if err := fn(Until(target, clock.Now())); err != nil {
		return err
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if err := fn(Until(target, clock.Now())); err != nil {
				return err
			}
		}
	}
}
