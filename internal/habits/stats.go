package habits

import (
	"sort"
	"time"

	"habitkeep/internal/dateutil"
	"habitkeep/internal/models"
)

// IsCompletedForDay reports whether the habit has a completed record for the
// day containing t. Absence of a record reads as not completed.
func (s *Store) IsCompletedForDay(habitID string, t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isCompletedLocked(habitID, dateutil.DayKey(t))
}

func (s *Store) isCompletedLocked(habitID, day string) bool {
	c, ok := s.completions[completionKey{habitID: habitID, day: day}]
	return ok && c.Completed
}

// CompletionsForDay returns every habit's completion record for the day
// containing t, ordered by habit id.
func (s *Store) CompletionsForDay(t time.Time) []models.Completion {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := dateutil.DayKey(t)
	var out []models.Completion
	for key, c := range s.completions {
		if key.day == day {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HabitID < out[j].HabitID })
	return out
}

// CompletionsForHabit returns the habit's completion records between start and
// end inclusive, ordered by day.
func (s *Store) CompletionsForHabit(habitID string, start, end time.Time) []models.Completion {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Day keys sort lexicographically in date order.
	startKey, endKey := dateutil.DayKey(start), dateutil.DayKey(end)
	var out []models.Completion
	for key, c := range s.completions {
		if key.habitID == habitID && key.day >= startKey && key.day <= endKey {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CurrentStreak counts consecutive completed days ending at today. An
// unfinished today does not break an existing streak; the walk just starts at
// yesterday instead. The walk stops at the first day without a completed
// record, so cost is proportional to the streak length.
func (s *Store) CurrentStreak(habitID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.habitExistsLocked(habitID) {
		return 0
	}

	day := dateutil.StartOfDay(s.clock.Now())
	if !s.isCompletedLocked(habitID, dateutil.DayKey(day)) {
		day = dateutil.AddDays(day, -1)
	}

	streak := 0
	for s.isCompletedLocked(habitID, dateutil.DayKey(day)) {
		streak++
		day = dateutil.AddDays(day, -1)
	}
	return streak
}

// CompletionRate returns the fraction of the most recent days calendar days
// (today inclusive) with a completed record. days <= 0 yields 0.
func (s *Store) CompletionRate(habitID string, days int) float64 {
	if days <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := dateutil.StartOfDay(s.clock.Now())
	completed := 0
	for i := 0; i < days; i++ {
		day := dateutil.AddDays(today, -i)
		if s.isCompletedLocked(habitID, dateutil.DayKey(day)) {
			completed++
		}
	}
	return float64(completed) / float64(days)
}

// GoalProgress returns the habit's lifetime count of completed days against
// its goal count. The counter is deliberately not scoped to the current
// period; it matches the long-observed product behavior.
func (s *Store) GoalProgress(habitID string) (completed, goal int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var habit *models.Habit
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			habit = &s.habits[i]
			break
		}
	}
	if habit == nil {
		return 0, 0
	}

	for key, c := range s.completions {
		if key.habitID == habitID && c.Completed {
			completed++
		}
	}
	return completed, habit.GoalCount
}

func (s *Store) habitExistsLocked(habitID string) bool {
	for _, h := range s.habits {
		if h.ID == habitID {
			return true
		}
	}
	return false
}
