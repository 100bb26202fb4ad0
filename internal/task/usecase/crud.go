package usecase

import (
	"context"

	"echonote/internal/model"
	"echonote/internal/task"
	"echonote/internal/task/repository"
)

// List returns the caller's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.List: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Update applies a partial update to one of the caller's tasks.
// A task that exists under another owner is reported as not found, so the id
// space never leaks across owners.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:        input.ID,
		OwnerID:   sc.UserID,
		Name:      input.Name,
		Completed: input.Completed,
		DueDate:   input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Update: %v", err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes one of the caller's tasks, with the same not-found
// conflation as Update.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	ok, err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.Delete: %v", err)
		return err
	}
	if !ok {
		return task.ErrTaskNotFound
	}
	return nil
}
