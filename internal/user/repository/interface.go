package repository

import (
	"context"

	"echonote/internal/model"
)

// Repository defines all data access methods for users and their sessions.
type Repository interface {
	// CreateUser inserts a new user and returns the stored record.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)

	// GetUserByUsername returns a zero-value User (ID == "") when no user
	// has the given username.
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	// CreateSession inserts a new session row for a user.
	CreateSession(ctx context.Context, opt CreateSessionOptions) (model.Session, error)

	// GetSession returns a zero-value Session (Token == "") when the token
	// is unknown. Expiry is enforced by the caller.
	GetSession(ctx context.Context, token string) (model.Session, error)

	// DeleteSession removes a session row. Deleting an unknown token is a
	// no-op.
	DeleteSession(ctx context.Context, token string) error
}
