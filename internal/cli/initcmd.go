package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"habitkeep/internal/constants"
	"habitkeep/internal/models"
)

type InitCmd struct {
	Force bool `help:"Reset by deleting existing data before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		for _, name := range []string{
			constants.StorageKeyHabits + ".json",
			constants.StorageKeyCompletions + ".json",
			constants.StorageKeySettings + ".json",
			"habitkeep.db",
		} {
			path := filepath.Join(ctx.ConfigDir, name)
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete %s: %w", path, err)
			}
		}
		fmt.Printf("Deleted existing data under: %s\n", ctx.ConfigDir)
	}

	if err := os.MkdirAll(ctx.ConfigDir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Writing settings seeds the storage files so later commands start warm.
	settings := ctx.Store.Settings()
	if c.Force {
		settings = models.DefaultSettings()
	}
	if err := ctx.Store.SetSettings(context.Background(), settings); err != nil {
		return err
	}

	fmt.Printf("Initialized habitkeep storage at: %s\n", ctx.ConfigDir)
	return nil
}
