// Package dateutil normalizes instants to canonical calendar-day keys and
// provides the calendar arithmetic behind the log and calendar views.
//
// Day boundaries are always computed in local time: a habit tracker's "today"
// is the user's local day, so every normalization site in the application goes
// through DayKey and no call site may format a day key any other way.
package dateutil

import (
	"fmt"
	"time"

	"habitkeep/internal/constants"
)

// DayKey returns the canonical YYYY-MM-DD key for the local calendar day
// containing t. It is deterministic and idempotent: DayKey(ParseDayKey(k)) == k.
func DayKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// Today returns the day key for the current local day.
func Today() string {
	return DayKey(time.Now())
}

// ParseDayKey parses a YYYY-MM-DD key into midnight of that local day.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q (expected YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// StartOfDay returns midnight of t's local calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// AddDays steps n calendar days from t using calendar arithmetic, so DST
// transitions cannot skip or repeat a day key.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether two instants fall in the same local month.
func SameMonth(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// StartOfWeek returns midnight of the first day of the week containing t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	t = StartOfDay(t)
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return AddDays(t, -offset)
}

// WeekDates returns the seven days of the week starting at startOfWeek.
func WeekDates(startOfWeek time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = AddDays(startOfWeek, i)
	}
	return dates
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	t = t.Local()
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// MonthGrid returns the days of the given month padded to whole weeks on both
// ends, ready to render as a calendar grid. The slice length is always a
// multiple of seven.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)

	start := StartOfWeek(first, weekStart)
	end := AddDays(StartOfWeek(last, weekStart), 6)

	var dates []time.Time
	for d := start; !d.After(end); d = AddDays(d, 1) {
		dates = append(dates, d)
	}
	return dates
}
