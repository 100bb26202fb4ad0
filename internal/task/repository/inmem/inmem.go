// Package inmem is an in-memory task Repository with the same ownership
// semantics as the Postgres implementation. Used by tests and local runs
// without a database.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"echonote/internal/model"
	repo "echonote/internal/task/repository"
)

type implRepository struct {
	mu    sync.Mutex
	tasks map[string]model.Task
	seq   int64 // keeps created_at strictly monotonic within one process
}

// New creates an empty in-memory Repository.
func New() repo.Repository {
	return &implRepository{tasks: make(map[string]model.Task)}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	t := model.Task{
		ID:        uuid.NewString(),
		OwnerID:   opt.OwnerID,
		Name:      opt.Name,
		DueDate:   opt.DueDate,
		RawText:   opt.RawText,
		CreatedAt: time.Now().Add(time.Duration(r.seq) * time.Nanosecond),
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tasks []model.Task
	for _, t := range r.tasks {
		if t.OwnerID == opt.OwnerID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}

	if opt.Name != nil {
		t.Name = *opt.Name
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}

	r.tasks[opt.ID] = t
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return false, nil
	}
	delete(r.tasks, t.ID)
	return true, nil
}
