package domain

import "time"

// Task priority runs from 1 (highest) to 4 (lowest).
const (
	PriorityHighest = 1
	PriorityLowest  = 4
	PriorityDefault = PriorityLowest
)

// Task is a single user-owned activity item belonging to exactly one list.
type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	ListID      string     `json:"list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	TagIDs      []string   `json:"tag_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ValidPriority reports whether p is inside the allowed 1..4 range.
func ValidPriority(p int) bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}
