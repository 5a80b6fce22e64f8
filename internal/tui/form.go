package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"habitkeep/internal/constants"
)

// newHabitForm builds the add/edit form bound to fm.
func newHabitForm(fm *habitFormModel) *huh.Form {
	colorOptions := make([]huh.Option[string], len(constants.HabitColors))
	for i, c := range constants.HabitColors {
		colorOptions[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewInput().
				Title("Goal per day").
				Value(&fm.GoalCount).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i <= 0 {
						return fmt.Errorf("goal must be a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&fm.Color),
		),
	).WithTheme(huh.ThemeDracula())
}
