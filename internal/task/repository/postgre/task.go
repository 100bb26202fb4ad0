package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"echonote/internal/model"
	repo "echonote/internal/task/repository"
)

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, owner_id, name, completed, due_date, raw_text, created_at)
		VALUES ($1, $2, $3, FALSE, $4, $5, NOW())
		RETURNING id, owner_id, name, completed, due_date, raw_text, created_at`

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.OwnerID, opt.Name, opt.DueDate, opt.RawText).Scan(
		&t.ID, &t.OwnerID, &t.Name, &t.Completed, &t.DueDate, &t.RawText, &t.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// ListTasks returns the owner's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	const query = `
		SELECT id, owner_id, name, completed, due_date, raw_text, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Completed, &t.DueDate, &t.RawText, &t.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields to the owner's task.
// Returns zero-value Task when no row matches id AND owner, so a foreign
// owner's id behaves exactly like a missing one.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query, args := r.buildUpdateQuery(opt)
	if len(args) == 2 {
		// Patch had no fields: return the current row under the same
		// owner predicate instead of issuing an empty UPDATE.
		return r.getOwned(ctx, opt.ID, opt.OwnerID)
	}

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.OwnerID, &t.Name, &t.Completed, &t.DueDate, &t.RawText, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes the owner's task. Returns false when nothing matched.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return affected > 0, nil
}

func (r *implRepository) getOwned(ctx context.Context, id, ownerID string) (model.Task, error) {
	const query = `
		SELECT id, owner_id, name, completed, due_date, raw_text, created_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2`

	var t model.Task
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.Name, &t.Completed, &t.DueDate, &t.RawText, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getOwned"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}
