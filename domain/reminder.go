package domain

import "time"

// Reminder is a time-based reminder attached to a task.
type Reminder struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	RemindAt  time.Time `json:"remind_at"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
