package cli

import (
	"fmt"
	"strings"
	"time"

	"habitkeep/internal/dateutil"
)

type DoneCmd struct {
	Name string `arg:"" help:"Habit to toggle."`
	Date string `help:"Day to toggle in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DoneCmd) Run(ctx *Context) error {
	habit, err := ctx.resolveHabit(c.Name)
	if err != nil {
		return err
	}

	day := time.Now()
	if c.Date != "" {
		day, err = dateutil.ParseDayKey(c.Date)
		if err != nil {
			return err
		}
	}

	if err := ctx.Store.ToggleCompletion(habit.ID, day); err != nil {
		return err
	}

	key := dateutil.DayKey(day)
	if ctx.Store.IsCompletedForDay(habit.ID, day) {
		fmt.Printf("Marked %q done for %s\n", habit.Name, key)
	} else {
		fmt.Printf("Unmarked %q for %s\n", habit.Name, key)
	}
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	allHabits := ctx.Store.Habits()
	if len(allHabits) == 0 {
		fmt.Println("No habits yet. Add one with 'habitkeep add <name>'.")
		return nil
	}

	now := time.Now()
	fmt.Printf("Habits for %s:\n\n", dateutil.DayKey(now))

	done := 0
	for _, h := range allHabits {
		status := "[ ]"
		if ctx.Store.IsCompletedForDay(h.ID, now) {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", status, h.Name)
	}
	fmt.Printf("\nCompleted: %d/%d\n", done, len(allHabits))
	return nil
}

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	allHabits := ctx.Store.Habits()
	if c.Habit != "" {
		habit, err := ctx.resolveHabit(c.Habit)
		if err != nil {
			return err
		}
		allHabits = allHabits[:0]
		allHabits = append(allHabits, habit)
	}
	if len(allHabits) == 0 {
		fmt.Println("No habits to show.")
		return nil
	}
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", c.Days)
	}

	end := dateutil.StartOfDay(time.Now())
	start := dateutil.AddDays(end, -(c.Days - 1))

	const nameWidth = 20
	fmt.Printf("Habit log (last %d days):\n\n", c.Days)
	fmt.Print(strings.Repeat(" ", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", dateutil.AddDays(start, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*c.Days))

	for _, h := range allHabits {
		name := h.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-3] + "..."
		}
		fmt.Printf("%-*s", nameWidth, name)
		for i := 0; i < c.Days; i++ {
			if ctx.Store.IsCompletedForDay(h.ID, dateutil.AddDays(start, i)) {
				fmt.Print("   x  ")
			} else {
				fmt.Print("   .  ")
			}
		}
		fmt.Println()
	}
	return nil
}
