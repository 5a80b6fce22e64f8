package cli

import (
	"fmt"
	"os"

	"habitkeep/internal/backup"
)

type ExportCmd struct {
	Out    string `help:"Write the export to a file instead of the backups directory." default:""`
	Stdout bool   `help:"Print the export to stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	payload, err := ctx.Store.ExportData()
	if err != nil {
		return err
	}

	switch {
	case c.Stdout:
		fmt.Println(payload)
	case c.Out != "":
		if err := os.WriteFile(c.Out, []byte(payload), 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("Exported to %s\n", c.Out)
	default:
		path, err := backup.NewManager(ctx.ConfigDir).Write(payload)
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", path)
	}
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Path of a previously exported JSON file."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if err := ctx.Store.ImportData(string(data)); err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	completions := ctx.Store.Completions()
	fmt.Printf("Imported %d habit(s) and %d completion record(s).\n", len(habits), len(completions))
	return nil
}

type BackupsCmd struct{}

func (c *BackupsCmd) Run(ctx *Context) error {
	backups, err := backup.NewManager(ctx.ConfigDir).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups yet. Run 'habitkeep export' to create one.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %6d bytes  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
	}
	return nil
}
