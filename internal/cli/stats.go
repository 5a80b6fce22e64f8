package cli

import (
	"fmt"

	"habitkeep/internal/models"
)

type StatsCmd struct {
	Habit string `help:"Show stats for a specific habit only." default:""`
}

func (c *StatsCmd) Run(ctx *Context) error {
	var selected []models.Habit
	if c.Habit != "" {
		habit, err := ctx.resolveHabit(c.Habit)
		if err != nil {
			return err
		}
		selected = append(selected, habit)
	} else {
		selected = ctx.Store.Habits()
	}
	if len(selected) == 0 {
		fmt.Println("No habits to show.")
		return nil
	}

	for _, h := range selected {
		streak := ctx.Store.CurrentStreak(h.ID)
		week := ctx.Store.CompletionRate(h.ID, 7)
		month := ctx.Store.CompletionRate(h.ID, 30)
		completed, goal := ctx.Store.GoalProgress(h.ID)

		fmt.Printf("%s\n", h.Name)
		fmt.Printf("  streak:        %d day(s)\n", streak)
		fmt.Printf("  last 7 days:   %.0f%%\n", week*100)
		fmt.Printf("  last 30 days:  %.0f%%\n", month*100)
		fmt.Printf("  total done:    %d (goal %d/day)\n", completed, goal)
	}
	return nil
}
