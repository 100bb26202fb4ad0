package repository

import (
	"context"

	"echonote/internal/model"
)

// Repository defines all data access methods for the Task entity.
// Every method is owner-scoped: no call can read or mutate a task whose
// owner differs from the one in the options, regardless of the id supplied.
type Repository interface {
	// CreateTask inserts a new task and returns the stored record.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)

	// ListTasks returns the owner's tasks ordered by created_at descending.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// UpdateTask applies the non-nil fields to the owner's task and returns
	// the updated record. Returns a zero-value Task (ID == "") when no row
	// matches both id and owner.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)

	// DeleteTask removes the owner's task. Returns false when no row matches
	// both id and owner.
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
}
