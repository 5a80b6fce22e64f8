// Package habits is the single source of truth for habits and their daily
// completions. All mutation and every derived statistic flows through the
// Store; the CLI and TUI hold a reference and never touch the collections
// directly.
package habits

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"habitkeep/internal/constants"
	"habitkeep/internal/dateutil"
	"habitkeep/internal/logger"
	"habitkeep/internal/models"
	"habitkeep/internal/storage"
)

var (
	// ErrNotLoaded is returned by mutations before Load has run.
	ErrNotLoaded = errors.New("store not loaded")
	// ErrHabitNotFound indicates a habit id with no matching live habit.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidFormat indicates an import payload that is not the expected shape.
	ErrInvalidFormat = errors.New("invalid data format")
)

// completionKey indexes completions by their intended uniqueness invariant:
// at most one record per (habit, day) pair.
type completionKey struct {
	habitID string
	day     string
}

// Config configures a Store.
type Config struct {
	Adapter storage.Adapter
	// Clock defaults to the system clock.
	Clock Clock
	// Debounce is the quiet window before a mutation is persisted.
	// Zero means constants.SaveDebounce.
	Debounce time.Duration
	// OnSaveError, when set, is invoked with every failed persistence write so
	// the presentation layer can surface a notice. Failures never roll back
	// in-memory state.
	OnSaveError func(error)
}

// Store owns the habit and completion collections and their persistence
// lifecycle. Mutations update memory synchronously and schedule a debounced
// full-snapshot write; queries re-derive from current state on every call.
type Store struct {
	mu sync.Mutex

	adapter     storage.Adapter
	clock       Clock
	debounce    time.Duration
	onSaveError func(error)

	loaded      bool
	habits      []models.Habit
	completions map[completionKey]models.Completion
	settings    models.Settings

	dirty   bool
	pending Timer

	// saveMu serializes snapshot-and-write cycles so the fast-path write and a
	// firing debounce timer cannot interleave their key writes.
	saveMu sync.Mutex
	saves  sync.WaitGroup
}

// NewStore creates a Store. Call Load before mutating.
func NewStore(cfg Config) *Store {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock()
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = constants.SaveDebounce
	}
	return &Store{
		adapter:     cfg.Adapter,
		clock:       clock,
		debounce:    debounce,
		onSaveError: cfg.OnSaveError,
		completions: make(map[completionKey]models.Completion),
		settings:    models.DefaultSettings(),
	}
}

// Load reads both collections from the adapter. A failed or malformed read is
// not fatal: the store logs it, starts from empty collections, and still
// becomes loaded so later writes are not blocked. The returned error exists
// only so the caller can surface a notice.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var loadErr error

	habitsData, err := s.adapter.Get(ctx, constants.StorageKeyHabits)
	if err != nil {
		loadErr = fmt.Errorf("failed to load habits: %w", err)
	} else if habitsData != nil {
		var habits []models.Habit
		if err := json.Unmarshal(habitsData, &habits); err != nil {
			loadErr = fmt.Errorf("failed to parse habits: %w", err)
		} else {
			s.habits = habits
		}
	}

	completionsData, err := s.adapter.Get(ctx, constants.StorageKeyCompletions)
	if err != nil {
		loadErr = errors.Join(loadErr, fmt.Errorf("failed to load completions: %w", err))
	} else if completionsData != nil {
		var completions []models.Completion
		if err := json.Unmarshal(completionsData, &completions); err != nil {
			loadErr = errors.Join(loadErr, fmt.Errorf("failed to parse completions: %w", err))
		} else {
			s.setCompletionsLocked(completions)
		}
	}

	if settingsData, err := s.adapter.Get(ctx, constants.StorageKeySettings); err == nil && settingsData != nil {
		var settings models.Settings
		if err := json.Unmarshal(settingsData, &settings); err == nil {
			s.settings = settings
		} else {
			logger.Warn("Ignoring malformed settings", "error", err)
		}
	}

	sort.SliceStable(s.habits, func(i, j int) bool {
		return s.habits[i].Position < s.habits[j].Position
	})

	s.loaded = true
	if loadErr != nil {
		logger.Warn("Starting with empty collections after load failure", "error", loadErr)
	}
	return loadErr
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) setCompletionsLocked(completions []models.Completion) {
	s.completions = make(map[completionKey]models.Completion, len(completions))
	for _, c := range completions {
		s.completions[completionKey{habitID: c.HabitID, day: c.Date}] = c
	}
}

// HabitDraft carries the caller-supplied fields of a new habit. The store
// assigns id, creation timestamp, and position.
type HabitDraft struct {
	Name        string
	Description string
	GoalCount   int
	Color       string
}

// AddHabit appends a new habit at the end of the display order.
func (s *Store) AddHabit(draft HabitDraft) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.Habit{}, ErrNotLoaded
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Description: draft.Description,
		GoalCount:   draft.GoalCount,
		GoalPeriod:  constants.GoalPeriodDay,
		Color:       draft.Color,
		CreatedAt:   s.clock.Now().Format(time.RFC3339),
		Position:    len(s.habits),
	}
	s.habits = append(s.habits, habit)
	s.scheduleSaveLocked()
	return habit, nil
}

// UpdateHabit replaces the habit with a matching id. The stored id, creation
// timestamp, and position are preserved regardless of what the caller passes.
func (s *Store) UpdateHabit(habit models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}

	for i, existing := range s.habits {
		if existing.ID == habit.ID {
			habit.CreatedAt = existing.CreatedAt
			habit.Position = existing.Position
			habit.GoalPeriod = constants.GoalPeriodDay
			s.habits[i] = habit
			s.scheduleSaveLocked()
			return nil
		}
	}
	return fmt.Errorf("habit %s: %w", habit.ID, ErrHabitNotFound)
}

// DeleteHabit removes the habit and every completion that references it, then
// re-numbers the remaining habits so positions stay dense from zero.
func (s *Store) DeleteHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}

	found := false
	remaining := s.habits[:0]
	for _, h := range s.habits {
		if h.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, h)
	}
	if !found {
		return fmt.Errorf("habit %s: %w", id, ErrHabitNotFound)
	}
	for i := range remaining {
		remaining[i].Position = i
	}
	s.habits = remaining

	for key := range s.completions {
		if key.habitID == id {
			delete(s.completions, key)
		}
	}

	s.scheduleSaveLocked()
	return nil
}

// ReorderHabits reassigns positions per the order of ids, which must be an
// exact permutation of the live habit ids. Unknown, duplicate, or missing ids
// reject the whole reorder; no partial result is committed.
func (s *Store) ReorderHabits(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}

	if len(ids) != len(s.habits) {
		return fmt.Errorf("reorder requires all %d habit ids, got %d", len(s.habits), len(ids))
	}

	byID := make(map[string]models.Habit, len(s.habits))
	for _, h := range s.habits {
		byID[h.ID] = h
	}

	reordered := make([]models.Habit, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if seen[id] {
			return fmt.Errorf("duplicate habit id %s in reorder", id)
		}
		seen[id] = true
		habit, ok := byID[id]
		if !ok {
			return fmt.Errorf("habit %s: %w", id, ErrHabitNotFound)
		}
		habit.Position = i
		reordered = append(reordered, habit)
	}

	s.habits = reordered
	s.scheduleSaveLocked()
	return nil
}

// ToggleCompletion flips the completion for (habitID, the day containing t),
// creating the record on first toggle. Toggling twice restores the prior
// state. Because a toggle is the most frequent user action, it also kicks off
// an immediate asynchronous write alongside the usual debounced one; both
// write the full current snapshot so the last write wins cleanly.
func (s *Store) ToggleCompletion(habitID string, t time.Time) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}

	day := dateutil.DayKey(t)
	key := completionKey{habitID: habitID, day: day}
	if existing, ok := s.completions[key]; ok {
		existing.Completed = !existing.Completed
		s.completions[key] = existing
	} else {
		s.completions[key] = models.Completion{
			ID:        uuid.New().String(),
			HabitID:   habitID,
			Date:      day,
			Completed: true,
		}
	}
	s.scheduleSaveLocked()
	s.mu.Unlock()

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		s.persist()
	}()
	return nil
}

// Settings returns the current application settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSettings persists new settings immediately; settings changes are rare
// enough that they bypass the debounce.
func (s *Store) SetSettings(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.settings = settings
	s.mu.Unlock()

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := s.adapter.Set(ctx, constants.StorageKeySettings, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Habits returns the live habits ordered by position.
func (s *Store) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Habit returns the habit with the given id.
func (s *Store) Habit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrHabitNotFound)
}

// HabitByName returns the first habit matching name in display order.
func (s *Store) HabitByName(name string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, ErrHabitNotFound)
}

// Completions returns every completion record, ordered by habit then day.
func (s *Store) Completions() []models.Completion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completionsSnapshotLocked()
}

func (s *Store) completionsSnapshotLocked() []models.Completion {
	out := make([]models.Completion, 0, len(s.completions))
	for _, c := range s.completions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HabitID != out[j].HabitID {
			return out[i].HabitID < out[j].HabitID
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// scheduleSaveLocked supersedes any pending write with a fresh one after the
// quiet window. Caller must hold mu.
func (s *Store) scheduleSaveLocked() {
	s.dirty = true
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = s.clock.AfterFunc(s.debounce, func() {
		s.saves.Add(1)
		defer s.saves.Done()
		s.persist()
	})
}

// persist writes the full current snapshot of both collections. Failures are
// logged and reported through OnSaveError; in-memory state is never rolled
// back, and the next mutation retries naturally through the debounce.
func (s *Store) persist() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}
	habitsData, err := json.Marshal(s.habits)
	if err != nil {
		s.mu.Unlock()
		s.reportSaveError(fmt.Errorf("failed to serialize habits: %w", err))
		return
	}
	completionsData, err := json.Marshal(s.completionsSnapshotLocked())
	if err != nil {
		s.mu.Unlock()
		s.reportSaveError(fmt.Errorf("failed to serialize completions: %w", err))
		return
	}
	s.dirty = false
	s.mu.Unlock()

	ctx := context.Background()
	if err := s.adapter.Set(ctx, constants.StorageKeyHabits, habitsData); err != nil {
		s.reportSaveError(fmt.Errorf("failed to save habits: %w", err))
		return
	}
	if err := s.adapter.Set(ctx, constants.StorageKeyCompletions, completionsData); err != nil {
		s.reportSaveError(fmt.Errorf("failed to save completions: %w", err))
		return
	}
	logger.Debug("Persisted snapshot")
}

func (s *Store) reportSaveError(err error) {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
	logger.Error("Save failed", "error", err)
	if s.onSaveError != nil {
		s.onSaveError(err)
	}
}

// Flush persists any unsaved mutations immediately, bypassing the debounce.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if dirty {
		s.persist()
	}
}

// Close flushes pending work and waits for in-flight writes. The adapter is
// owned by the caller and is not closed here.
func (s *Store) Close() {
	s.Flush()
	s.saves.Wait()
}
