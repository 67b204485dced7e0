package transport

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TTL      int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}

type ProfileUpdateRequest struct {
	Email string `json:"email"`
}

type ListRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TaskRequest struct {
	ID          string   `json:"id"`
	ListID      string   `json:"list_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	DueDate     string   `json:"due_date"` // YYYY-MM-DD
	Completed   bool     `json:"completed"`
	TagIDs      []string `json:"tag_ids"`
}

// ToggleRequest flips the done flag when Done is absent, sets it otherwise.
type ToggleRequest struct {
	Done *bool `json:"done"`
}

type TagRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TagBulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type ReminderRequest struct {
	ID       string `json:"id"`
	TaskID   string `json:"task_id"`
	RemindAt string `json:"remind_at"` // RFC 3339
	Note     string `json:"note"`
}

type CommentRequest struct {
	Body string `json:"body"`
}

type EventRequest struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	StartTime string `json:"start_time"` // RFC 3339
	EndTime   string `json:"end_time"`   // RFC 3339
}
