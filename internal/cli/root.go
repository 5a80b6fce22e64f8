package cli

import (
	"fmt"

	"habitkeep/internal/habits"
	"habitkeep/internal/models"
)

// Context is the shared state passed to every command's Run method.
type Context struct {
	Store     *habits.Store
	ConfigDir string
}

// resolveHabit finds a habit by name, producing a friendly error listing the
// known habits when nothing matches.
func (c *Context) resolveHabit(name string) (models.Habit, error) {
	habit, err := c.Store.HabitByName(name)
	if err == nil {
		return habit, nil
	}

	known := c.Store.Habits()
	if len(known) == 0 {
		return models.Habit{}, fmt.Errorf("habit %q not found (no habits yet, try 'habitkeep add')", name)
	}
	names := make([]string, len(known))
	for i, h := range known {
		names[i] = h.Name
	}
	return models.Habit{}, fmt.Errorf("habit %q not found (have: %v)", name, names)
}
