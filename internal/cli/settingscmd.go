package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"habitkeep/internal/validation"
)

type SettingsCmd struct {
	Theme     string `help:"Set the theme (system, light, dark)." default:""`
	WeekStart string `help:"Set the first day of the week (sunday or monday)." default:""`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings := ctx.Store.Settings()

	changed := false
	if c.Theme != "" {
		if err := validation.Theme(c.Theme); err != nil {
			return err
		}
		settings.Theme = c.Theme
		changed = true
	}
	if c.WeekStart != "" {
		switch strings.ToLower(c.WeekStart) {
		case "sunday", "sun":
			settings.WeekStart = time.Sunday
		case "monday", "mon":
			settings.WeekStart = time.Monday
		default:
			return fmt.Errorf("invalid week start %q (expected sunday or monday)", c.WeekStart)
		}
		changed = true
	}

	if changed {
		if err := ctx.Store.SetSettings(context.Background(), settings); err != nil {
			return err
		}
	}

	fmt.Printf("theme:      %s\n", settings.Theme)
	fmt.Printf("week start: %s\n", settings.WeekStart)
	return nil
}
