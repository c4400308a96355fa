package dates

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DayLayout is the only accepted calendar-day format. Range comparison must
// never depend on locale-sensitive parsing.
const DayLayout = "2006-01-02"

// clock is a package-level time source so tests can freeze time via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Today returns the current calendar date as YYYY-MM-DD using the local clock.
func Today() string {
	return clock.Now().Format(DayLayout)
}

// DaysAgo returns the calendar date n days before today as YYYY-MM-DD.
// Subtraction is calendar-based, so month and year rollovers are handled.
func DaysAgo(n int) string {
	return clock.Now().AddDate(0, 0, -n).Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD string into a UTC midnight time.Time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// IsValidRange reports whether start and end are well-formed calendar days
// with start <= end. Equal dates form a valid single-day range. Malformed
// input is rejected rather than compared.
func IsValidRange(start, end string) bool {
	s, err := ParseDay(start)
	if err != nil {
		return false
	}
	e, err := ParseDay(end)
	if err != nil {
		return false
	}
	return !s.After(e)
}
