package clock

import "time"

// Zone is the fixed civil timezone used for every "today" comparison.
// UTC-3, no DST: the whole system shares one notion of the current date.
var Zone = time.FixedZone("UTC-3", -3*60*60)

// Clock supplies the current time so detectors can be tested with a frozen date.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().In(Zone) }

// System returns a clock backed by the wall clock, normalized to Zone.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at t (converted to Zone). Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock{t.In(Zone)} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Today truncates the clock's current time to a civil date in Zone.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// DateOf returns t's civil date in Zone (midnight, Zone offset).
func DateOf(t time.Time) time.Time {
	t = t.In(Zone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Zone)
}

// DaysBetween returns the whole-day difference between two civil dates (a - b).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(a).Sub(DateOf(b)).Hours() / 24)
}
