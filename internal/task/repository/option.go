package repository

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	OwnerID string
	Name    string
	DueDate *string // canonical date or verbatim phrase; nil when absent
	RawText string
}

// ListTasksOptions holds filter parameters for listing tasks.
type ListTasksOptions struct {
	OwnerID string
}

// UpdateTaskOptions holds parameters for a partial task update.
// Only non-nil fields are written.
type UpdateTaskOptions struct {
	ID        string
	OwnerID   string
	Name      *string
	Completed *bool
	DueDate   *string
}

// DeleteTaskOptions holds parameters for deleting a task.
type DeleteTaskOptions struct {
	ID      string
	OwnerID string
}
