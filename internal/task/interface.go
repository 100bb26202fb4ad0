package task

import (
	"context"

	"echonote/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Extract turns a transcript into task candidates without persisting anything.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Save runs the full pipeline: transcript, extraction, normalization,
	// due-date resolution, persistence. Returns how many tasks were stored.
	Save(ctx context.Context, sc model.Scope, input SaveInput) (SaveOutput, error)

	// List returns the caller's tasks, newest first.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Update applies a partial update to one of the caller's tasks.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete removes one of the caller's tasks.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
