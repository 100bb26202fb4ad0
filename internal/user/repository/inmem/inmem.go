// Package inmem provides an in-memory user Repository used by tests and
// local development without a database.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"echonote/internal/model"
	repo "echonote/internal/user/repository"
)

type implRepository struct {
	mu       sync.Mutex
	users    map[string]model.User // keyed by username
	sessions map[string]model.Session
}

func New() repo.Repository {
	return &implRepository{
		users:    make(map[string]model.User),
		sessions: make(map[string]model.Session),
	}
}

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[opt.Username]; exists {
		return model.User{}, repo.ErrDuplicateUsername
	}

	u := model.User{
		ID:           uuid.NewString(),
		Username:     opt.Username,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[opt.Username] = u
	return u, nil
}

func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[username], nil
}

func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := model.Session{Token: opt.Token, UserID: opt.UserID, ExpiresAt: opt.ExpiresAt}
	r.sessions[opt.Token] = s
	return s, nil
}

func (r *implRepository) GetSession(ctx context.Context, token string) (model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[token], nil
}

func (r *implRepository) DeleteSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
