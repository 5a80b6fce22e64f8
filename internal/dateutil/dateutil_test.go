package dateutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "midday",
			in:   time.Date(2025, 3, 14, 12, 30, 0, 0, time.Local),
			want: "2025-03-14",
		},
		{
			name: "just before midnight",
			in:   time.Date(2025, 3, 14, 23, 59, 59, 0, time.Local),
			want: "2025-03-14",
		},
		{
			name: "midnight belongs to the new day",
			in:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
			want: "2025-03-15",
		},
		{
			name: "single digit month and day are padded",
			in:   time.Date(2025, 1, 2, 8, 0, 0, 0, time.Local),
			want: "2025-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.in); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayKeyIdempotent(t *testing.T) {
	key := DayKey(time.Date(2025, 6, 1, 18, 45, 0, 0, time.Local))
	parsed, err := ParseDayKey(key)
	if err != nil {
		t.Fatalf("ParseDayKey(%q) failed: %v", key, err)
	}
	if again := DayKey(parsed); again != key {
		t.Errorf("DayKey is not idempotent: %q != %q", again, key)
	}
}

func TestParseDayKeyInvalid(t *testing.T) {
	for _, key := range []string{"", "2025-13-01", "03/14/2025", "2025-3-14", "not-a-date"} {
		if _, err := ParseDayKey(key); err == nil {
			t.Errorf("ParseDayKey(%q) expected error, got nil", key)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2025-03-14 is a Friday
	friday := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		weekStart time.Weekday
		want      string
	}{
		{name: "sunday start", weekStart: time.Sunday, want: "2025-03-09"},
		{name: "monday start", weekStart: time.Monday, want: "2025-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(friday, tt.weekStart)
			if DayKey(got) != tt.want {
				t.Errorf("StartOfWeek() = %s, want %s", DayKey(got), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("StartOfWeek() not at midnight: %v", got)
			}
		})
	}

	// A day that already is the week start maps to itself
	sunday := time.Date(2025, 3, 9, 10, 0, 0, 0, time.Local)
	if got := StartOfWeek(sunday, time.Sunday); DayKey(got) != "2025-03-09" {
		t.Errorf("StartOfWeek(sunday) = %s, want 2025-03-09", DayKey(got))
	}
}

func TestWeekDates(t *testing.T) {
	start := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)
	dates := WeekDates(start)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if DayKey(dates[0]) != "2025-03-09" || DayKey(dates[6]) != "2025-03-15" {
		t.Errorf("unexpected week range %s..%s", DayKey(dates[0]), DayKey(dates[6]))
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{name: "january", in: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), want: 31},
		{name: "february non-leap", in: time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), want: 28},
		{name: "february leap", in: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), want: 29},
		{name: "april", in: time.Date(2025, 4, 30, 0, 0, 0, 0, time.Local), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.in); got != tt.want {
				t.Errorf("DaysInMonth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthGrid(t *testing.T) {
	// March 2025: Mar 1 is a Saturday, Mar 31 a Monday.
	grid := MonthGrid(2025, time.March, time.Sunday)

	if len(grid)%7 != 0 {
		t.Fatalf("grid length %d is not a multiple of 7", len(grid))
	}
	if grid[0].Weekday() != time.Sunday {
		t.Errorf("grid starts on %v, want Sunday", grid[0].Weekday())
	}
	if DayKey(grid[0]) != "2025-02-23" {
		t.Errorf("grid starts at %s, want 2025-02-23", DayKey(grid[0]))
	}
	if DayKey(grid[len(grid)-1]) != "2025-04-05" {
		t.Errorf("grid ends at %s, want 2025-04-05", DayKey(grid[len(grid)-1]))
	}

	// Every day of March must be present exactly once
	seen := make(map[string]int)
	for _, d := range grid {
		seen[DayKey(d)]++
	}
	for day := 1; day <= 31; day++ {
		key := DayKey(time.Date(2025, time.March, day, 0, 0, 0, 0, time.Local))
		if seen[key] != 1 {
			t.Errorf("day %s appears %d times in grid", key, seen[key])
		}
	}
}

func TestSameDayAndMonth(t *testing.T) {
	a := time.Date(2025, 3, 14, 1, 0, 0, 0, time.Local)
	b := time.Date(2025, 3, 14, 23, 0, 0, 0, time.Local)
	c := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected SameDay for same calendar day")
	}
	if SameDay(b, c) {
		t.Error("did not expect SameDay across midnight")
	}
	if !SameMonth(a, c) {
		t.Error("expected SameMonth within March")
	}
	if SameMonth(a, time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local)) {
		t.Error("did not expect SameMonth across years")
	}
}
