package constants

import "time"

const (
	AppName           = "habitkeep"
	DefaultConfigPath = "~/.config/habitkeep"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// SaveDebounce is the quiet window between a mutation and its persisted write.
	// A burst of mutations within the window collapses into a single write.
	SaveDebounce = time.Second

	// Storage keys
	StorageKeyHabits      = "habits"
	StorageKeyCompletions = "completions"
	StorageKeySettings    = "settings"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitkeep-"
	BackupFileSuffix = ".json"

	// GoalPeriodDay is the only supported goal cadence.
	GoalPeriodDay = "day"
)

// Theme names accepted in settings.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// HabitColors are the display color tokens a habit may carry. The store treats
// the color as opaque; only form validation consults this list.
var HabitColors = []string{
	"red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple", "pink",
}
