package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"habitkeep/internal/cli"
	"habitkeep/internal/constants"
	apperrors "habitkeep/internal/errors"
	"habitkeep/internal/habits"
	"habitkeep/internal/logger"
	"habitkeep/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory." type:"string" default:"~/.config/habitkeep"`
	Storage string `help:"Storage backend: json or sqlite." enum:"json,sqlite" default:"json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Init     cli.InitCmd     `cmd:"" help:"Initialize storage in the config directory."`
	Add      cli.AddCmd      `cmd:"" help:"Add a new habit."`
	List     cli.ListCmd     `cmd:"" help:"List habits in display order."`
	Edit     cli.EditCmd     `cmd:"" help:"Edit a habit."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a habit and its history."`
	Move     cli.MoveCmd     `cmd:"" help:"Move a habit to a new position."`
	Done     cli.DoneCmd     `cmd:"" help:"Toggle a habit's completion for a day."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's habit status."`
	Log      cli.LogCmd      `cmd:"" help:"Show an ASCII history grid."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show streaks, completion rates, and goal progress."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data as JSON."`
	Import   cli.ImportCmd   `cmd:"" help:"Import a previously exported JSON file."`
	Backups  cli.BackupsCmd  `cmd:"" help:"List export snapshots."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-only habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := expandPath(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var adapter storage.Adapter
	switch CLI.Storage {
	case "sqlite":
		adapter, err = storage.NewSQLiteAdapter(filepath.Join(configDir, "habitkeep.db"))
	default:
		adapter, err = storage.NewJSONFileAdapter(configDir)
	}
	if err != nil {
		apperrors.Fatal(err)
	}

	store := habits.NewStore(habits.Config{Adapter: adapter})
	if err := store.Load(context.Background()); err != nil {
		// Not fatal: the store falls back to empty collections.
		fmt.Fprintf(os.Stderr, "Warning: could not load saved data, starting fresh: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:     store,
		ConfigDir: configDir,
	}

	runErr := ctx.Run(appCtx)

	// Flush any mutation still inside the debounce window before exiting.
	store.Close()
	if err := adapter.Close(); err != nil {
		logger.Error("Failed to close storage", "error", err)
	}

	if runErr != nil {
		logger.Error("Command execution failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "%s\n", apperrors.Format(runErr))
		os.Exit(1)
	}
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
