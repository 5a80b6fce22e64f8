package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"habitkeep/internal/dateutil"
	"habitkeep/internal/habits"
	"habitkeep/internal/storage"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()
	dir := t.TempDir()

	adapter, err := storage.NewJSONFileAdapter(dir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	t.Cleanup(func() {
		if err := adapter.Close(); err != nil {
			t.Errorf("failed to close adapter: %v", err)
		}
	})

	store := habits.NewStore(habits.Config{Adapter: adapter})
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	t.Cleanup(store.Close)

	return &Context{Store: store, ConfigDir: dir}
}

func mustAdd(t *testing.T, ctx *Context, name string) {
	t.Helper()
	cmd := &AddCmd{Name: name, GoalCount: 1, Color: "blue"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("failed to add habit %q: %v", name, err)
	}
}

func TestInitCmd_Success(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	settingsPath := filepath.Join(ctx.ConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		t.Errorf("settings file was not created at %s", settingsPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed: %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx := setupTestContext(t)

	mustAdd(t, ctx, "Read")
	ctx.Store.Flush()

	habitsPath := filepath.Join(ctx.ConfigDir, "habits.json")
	if _, err := os.Stat(habitsPath); err != nil {
		t.Fatalf("expected habits file before force init: %v", err)
	}

	cmd := &InitCmd{Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}

	if _, err := os.Stat(habitsPath); !os.IsNotExist(err) {
		t.Errorf("habits file should be deleted after force init")
	}
}

func TestAddCmd(t *testing.T) {
	ctx := setupTestContext(t)

	mustAdd(t, ctx, "Read")

	habit, err := ctx.Store.HabitByName("Read")
	if err != nil {
		t.Fatalf("added habit not found: %v", err)
	}
	if habit.GoalCount != 1 || habit.Color != "blue" {
		t.Errorf("unexpected habit fields: %+v", habit)
	}
}

func TestAddCmd_RejectsDuplicateName(t *testing.T) {
	ctx := setupTestContext(t)

	mustAdd(t, ctx, "Read")

	cmd := &AddCmd{Name: "Read", GoalCount: 1, Color: "blue"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for duplicate habit name")
	}
}

func TestAddCmd_RejectsInvalidFields(t *testing.T) {
	ctx := setupTestContext(t)

	tests := []struct {
		name string
		cmd  AddCmd
	}{
		{"empty name", AddCmd{Name: "   ", GoalCount: 1, Color: "blue"}},
		{"zero goal", AddCmd{Name: "Read", GoalCount: 0, Color: "blue"}},
		{"unknown color", AddCmd{Name: "Read", GoalCount: 1, Color: "mauve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEditCmd(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")

	newName := "Read books"
	goal := 2
	cmd := &EditCmd{Name: "Read", NewName: &newName, GoalCount: &goal}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	habit, err := ctx.Store.HabitByName("Read books")
	if err != nil {
		t.Fatalf("renamed habit not found: %v", err)
	}
	if habit.GoalCount != 2 {
		t.Errorf("goal count = %d, want 2", habit.GoalCount)
	}
	if _, err := ctx.Store.HabitByName("Read"); err == nil {
		t.Error("old name should no longer resolve")
	}
}

func TestDeleteCmd(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")

	cmd := &DeleteCmd{Name: "Read"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := ctx.Store.Habits(); len(got) != 0 {
		t.Errorf("expected no habits, got %d", len(got))
	}
}

func TestDeleteCmd_UnknownHabit(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &DeleteCmd{Name: "Nope"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown habit")
	}
}

func TestMoveCmd(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "First")
	mustAdd(t, ctx, "Second")
	mustAdd(t, ctx, "Third")

	cmd := &MoveCmd{Name: "Third", To: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	got := ctx.Store.Habits()
	want := []string{"Third", "First", "Second"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestMoveCmd_OutOfRange(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")

	cmd := &MoveCmd{Name: "Read", To: 5}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for out-of-range position")
	}
}

func TestDoneCmd_TogglesCompletion(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")
	habit, _ := ctx.Store.HabitByName("Read")

	cmd := &DoneCmd{Name: "Read", Date: "2025-03-14"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}
	day, err := dateutil.ParseDayKey("2025-03-14")
	if err != nil {
		t.Fatalf("failed to parse day key: %v", err)
	}
	if !ctx.Store.IsCompletedForDay(habit.ID, day) {
		t.Error("habit should be completed after first toggle")
	}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second done failed: %v", err)
	}
	if ctx.Store.IsCompletedForDay(habit.ID, day) {
		t.Error("habit should be incomplete after second toggle")
	}
}

func TestDoneCmd_RejectsMalformedDate(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")

	cmd := &DoneCmd{Name: "Read", Date: "14/03/2025"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")
	mustAdd(t, ctx, "Exercise")

	done := &DoneCmd{Name: "Read", Date: "2025-03-14"}
	if err := done.Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "export.json")
	export := &ExportCmd{Out: out}
	if err := export.Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	fresh := setupTestContext(t)
	imp := &ImportCmd{File: out}
	if err := imp.Run(fresh); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if got := len(fresh.Store.Habits()); got != 2 {
		t.Errorf("imported habit count = %d, want 2", got)
	}
	if got := len(fresh.Store.Completions()); got != 1 {
		t.Errorf("imported completion count = %d, want 1", got)
	}
}

func TestImportCmd_MissingFile(t *testing.T) {
	ctx := setupTestContext(t)

	imp := &ImportCmd{File: filepath.Join(t.TempDir(), "nope.json")}
	if err := imp.Run(ctx); err == nil {
		t.Error("expected error for missing import file")
	}
}

func TestExportCmd_WritesBackup(t *testing.T) {
	ctx := setupTestContext(t)
	mustAdd(t, ctx, "Read")

	export := &ExportCmd{}
	if err := export.Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(ctx.ConfigDir, "backups"))
	if err != nil {
		t.Fatalf("failed to read backups dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("backup count = %d, want 1", len(entries))
	}
}
