package models

// Habit represents a recurring practice with a daily goal
type Habit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GoalCount   int    `json:"goal_count"`
	GoalPeriod  string `json:"goal_period"` // always "day"
	Color       string `json:"color"`
	CreatedAt   string `json:"created_at"` // RFC3339 timestamp
	Position    int    `json:"position"`   // dense 0..N-1 display order
}

// Completion records whether a habit was satisfied on a specific calendar day.
// A record with Completed=false is a toggled-off day, distinct from no record
// existing; both read as "not completed" but the record is kept for history.
type Completion struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"` // YYYY-MM-DD day key
	Completed bool   `json:"completed"`
}
