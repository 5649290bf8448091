package models

// Category classifies a habit for display and grouping
type Category string

const (
	CategoryAcademic Category = "Academic"
	CategoryHealth   Category = "Health"
	CategoryPersonal Category = "Personal"
)

// DefaultProgress is the momentum score assigned to a freshly created habit
const DefaultProgress = 60

// Habit represents one tracked routine for a user
type Habit struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Category          Category `json:"category"`
	Streak            int      `json:"streak"`
	Completed         bool     `json:"completed"`
	Progress          int      `json:"progress"`
	Frequency         string   `json:"frequency"`
	ReminderTime      string   `json:"reminderTime,omitempty"`
	CompletionHistory History  `json:"completionHistory,omitempty"`
}
