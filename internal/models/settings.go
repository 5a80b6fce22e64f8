package models

import "time"

// Settings holds user-facing application preferences
type Settings struct {
	Theme     string       `json:"theme"`      // system, light, or dark
	WeekStart time.Weekday `json:"week_start"` // first day of calendar weeks
}

// DefaultSettings returns the settings applied on first run
func DefaultSettings() Settings {
	return Settings{
		Theme:     "system",
		WeekStart: time.Sunday,
	}
}
