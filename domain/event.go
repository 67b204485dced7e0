package domain

import "time"

// Event is a fixed start/end time window bound to a task.
// A task carries at most one event.
type Event struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the time window invariant: the end must not precede the start.
func (e *Event) Validate() error {
	if e == nil {
		return ErrInvalidPayload
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return NewError(ErrCodeInvalid, "event requires both start and end time")
	}
	if e.EndTime.Before(e.StartTime) {
		return NewError(ErrCodeInvalid, "event end time cannot be earlier than start time")
	}
	return nil
}
