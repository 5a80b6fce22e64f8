// Package validation checks user-entered habit fields before they reach the
// store. The store itself trusts its callers; forms and CLI flags go through
// here first.
package validation

import (
	"fmt"
	"strings"

	"habitkeep/internal/constants"
	"habitkeep/internal/dateutil"
)

// ProblemType classifies a validation failure
type ProblemType string

const (
	ProblemEmptyName     ProblemType = "empty_name"
	ProblemBadGoalCount  ProblemType = "bad_goal_count"
	ProblemUnknownColor  ProblemType = "unknown_color"
	ProblemBadDayKey     ProblemType = "bad_day_key"
	ProblemUnknownTheme  ProblemType = "unknown_theme"
	ProblemDuplicateName ProblemType = "duplicate_name"
)

// Problem is a single rejected field with a user-facing description
type Problem struct {
	Type        ProblemType
	Field       string
	Description string
}

func (p Problem) Error() string { return p.Description }

// Result collects the problems found in one pass
type Result struct {
	Problems []Problem
}

// Ok reports whether no problems were found
func (r Result) Ok() bool { return len(r.Problems) == 0 }

// Err returns the first problem as an error, or nil
func (r Result) Err() error {
	if r.Ok() {
		return nil
	}
	return r.Problems[0]
}

// HabitFields validates the caller-supplied fields of a habit
func HabitFields(name string, goalCount int, color string) Result {
	var r Result
	if strings.TrimSpace(name) == "" {
		r.Problems = append(r.Problems, Problem{
			Type:        ProblemEmptyName,
			Field:       "name",
			Description: "habit name cannot be empty",
		})
	}
	if goalCount <= 0 {
		r.Problems = append(r.Problems, Problem{
			Type:        ProblemBadGoalCount,
			Field:       "goal-count",
			Description: fmt.Sprintf("goal count must be a positive integer, got %d", goalCount),
		})
	}
	if color != "" && !ValidColor(color) {
		r.Problems = append(r.Problems, Problem{
			Type:        ProblemUnknownColor,
			Field:       "color",
			Description: fmt.Sprintf("unknown color %q (valid: %s)", color, strings.Join(constants.HabitColors, ", ")),
		})
	}
	return r
}

// ValidColor reports whether the color token is one the app knows how to render
func ValidColor(color string) bool {
	for _, c := range constants.HabitColors {
		if c == color {
			return true
		}
	}
	return false
}

// ValidDayKey reports whether s parses as a YYYY-MM-DD day key
func ValidDayKey(s string) bool {
	_, err := dateutil.ParseDayKey(s)
	return err == nil
}

// Theme validates a settings theme name
func Theme(theme string) error {
	switch theme {
	case constants.ThemeSystem, constants.ThemeLight, constants.ThemeDark:
		return nil
	}
	return Problem{
		Type:        ProblemUnknownTheme,
		Field:       "theme",
		Description: fmt.Sprintf("unknown theme %q (valid: system, light, dark)", theme),
	}
}
