package utils

import "time"

// DateLayout is the calendar format used by every date field
const DateLayout = "2006-01-02"

// Clock tells the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant
type FixedClock time.Time

// Now returns the fixed instant
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today formats the clock's current date as YYYY-MM-DD
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}
