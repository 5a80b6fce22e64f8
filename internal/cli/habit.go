package cli

import (
	"fmt"
	"strings"

	"habitkeep/internal/habits"
	"habitkeep/internal/validation"
)

type AddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
	GoalCount   int    `help:"Completions per day to aim for." default:"1"`
	Color       string `help:"Display color." default:"blue"`
}

func (c *AddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.HabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	if err := validation.HabitFields(c.Name, c.GoalCount, c.Color).Err(); err != nil {
		return err
	}

	habit, err := ctx.Store.AddHabit(habits.HabitDraft{
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		GoalCount:   c.GoalCount,
		Color:       c.Color,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	allHabits := ctx.Store.Habits()
	if len(allHabits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitkeep add <name>'.")
		return nil
	}

	for _, h := range allHabits {
		line := fmt.Sprintf("%2d. %s", h.Position+1, h.Name)
		if h.Description != "" {
			line += fmt.Sprintf(" — %s", h.Description)
		}
		if streak := ctx.Store.CurrentStreak(h.ID); streak > 0 {
			line += fmt.Sprintf("  (%d day streak)", streak)
		}
		fmt.Println(line)
	}
	return nil
}

type EditCmd struct {
	Name        string  `arg:"" help:"Habit to edit."`
	NewName     *string `help:"New name."`
	Description *string `help:"New description."`
	GoalCount   *int    `help:"New daily goal count."`
	Color       *string `help:"New display color."`
}

func (c *EditCmd) Run(ctx *Context) error {
	habit, err := ctx.resolveHabit(c.Name)
	if err != nil {
		return err
	}

	if c.NewName != nil {
		habit.Name = strings.TrimSpace(*c.NewName)
	}
	if c.Description != nil {
		habit.Description = *c.Description
	}
	if c.GoalCount != nil {
		habit.GoalCount = *c.GoalCount
	}
	if c.Color != nil {
		habit.Color = *c.Color
	}

	if err := validation.HabitFields(habit.Name, habit.GoalCount, habit.Color).Err(); err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type DeleteCmd struct {
	Name string `arg:"" help:"Habit to delete (removes its whole history)."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.resolveHabit(c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit %q and its completions.\n", habit.Name)
	return nil
}

type MoveCmd struct {
	Name string `arg:"" help:"Habit to move."`
	To   int    `arg:"" help:"New 1-based position in the list."`
}

func (c *MoveCmd) Run(ctx *Context) error {
	habit, err := ctx.resolveHabit(c.Name)
	if err != nil {
		return err
	}

	current := ctx.Store.Habits()
	if c.To < 1 || c.To > len(current) {
		return fmt.Errorf("position %d out of range 1..%d", c.To, len(current))
	}

	ids := make([]string, 0, len(current))
	for _, h := range current {
		if h.ID != habit.ID {
			ids = append(ids, h.ID)
		}
	}
	at := c.To - 1
	ids = append(ids[:at], append([]string{habit.ID}, ids[at:]...)...)

	if err := ctx.Store.ReorderHabits(ids); err != nil {
		return err
	}
	fmt.Printf("Moved %q to position %d.\n", habit.Name, c.To)
	return nil
}
