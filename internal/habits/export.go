package habits

import (
	"encoding/json"
	"fmt"
	"sort"

	"habitkeep/internal/models"
)

type exportPayload struct {
	Habits      []models.Habit      `json:"habits"`
	Completions []models.Completion `json:"completions"`
}

// ExportData serializes a synchronous snapshot of both collections.
func (s *Store) ExportData() (string, error) {
	s.mu.Lock()
	payload := exportPayload{
		Habits:      append([]models.Habit(nil), s.habits...),
		Completions: s.completionsSnapshotLocked(),
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}
	return string(data), nil
}

// ImportData replaces both collections wholesale from a previously exported
// payload. The payload must contain both fields as arrays; anything else is
// rejected without touching current state.
func (s *Store) ImportData(data string) error {
	var payload struct {
		Habits      *[]models.Habit      `json:"habits"`
		Completions *[]models.Completion `json:"completions"`
	}
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if payload.Habits == nil || payload.Completions == nil {
		return fmt.Errorf("%w: habits and completions arrays are required", ErrInvalidFormat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}

	s.habits = *payload.Habits
	sort.SliceStable(s.habits, func(i, j int) bool {
		return s.habits[i].Position < s.habits[j].Position
	})
	s.setCompletionsLocked(*payload.Completions)
	s.scheduleSaveLocked()
	return nil
}
