package models

// Priority levels accepted by the backend.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a task record as returned by the backend.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *Timestamp `json:"due_date"`
	CategoryID  *int64     `json:"category_id"`
	UserID      int64      `json:"user_id"`
	CreatedAt   Timestamp  `json:"created_at"`
	UpdatedAt   Timestamp  `json:"updated_at"`
	CompletedAt *Timestamp `json:"completed_at"`
}

// TaskCreate is the payload for creating a task. Title is required,
// everything else is optional.
type TaskCreate struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	DueDate     *Timestamp `json:"due_date,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
}

// TaskUpdate carries partial task fields; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	DueDate     *Timestamp `json:"due_date,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
}

// TaskFilter narrows GET /tasks. Nil fields mean "no filter".
type TaskFilter struct {
	IsCompleted *bool
	CategoryID  *int64
	Priority    Priority
}

// TaskStats is the summary from GET /tasks/stats/summary.
type TaskStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Overdue    int `json:"overdue"`
	ByPriority struct {
		High   int `json:"high"`
		Medium int `json:"medium"`
		Low    int `json:"low"`
	} `json:"by_priority"`
}
