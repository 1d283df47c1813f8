// Package timeutil provides the clock and calendar formatting used
// throughout FocusForge: countdown displays, session log dates, and the
// today/yesterday pair the streak tracker compares against.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format used in the session log.
	DateLayout = "2006-01-02"

	// ClockLayout is the time-of-day format used in the session log.
	ClockLayout = "15:04"
)

// FormatClock formats a number of seconds as MM:SS. Minutes wrap at 100 so
// the output always fits in five characters.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes%100, seconds)
}

// FormatDate formats t as YYYY-MM-DD in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimeOfDay formats t as HH:MM in t's location.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(ClockLayout)
}

// Today returns the local calendar date string for now.
func Today(now time.Time) string {
	return FormatDate(now)
}

// Yesterday returns the local calendar date string 24 hours before now.
// Subtracting a fixed 86,400 seconds matches the behavior the session log
// was written against; DST shifts can land on the same date twice a year.
func Yesterday(now time.Time) string {
	return FormatDate(now.Add(-24 * time.Hour))
}

// ValidDate reports whether s is a plausible YYYY-MM-DD date. The check is
// deliberately loose: year 2000-2100, month 1-12, day 1-31, with no
// days-in-month validation. Rows like 2024-02-30 pass. Tightening this
// would change which legacy log rows load, so it stays as-is.
func ValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	if s[4] != '-' || s[7] != '-' {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	year := atoi(s[0:4])
	month := atoi(s[5:7])
	day := atoi(s[8:10])

	if year < 2000 || year > 2100 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}

// atoi converts a digits-only string; callers have already validated input.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
