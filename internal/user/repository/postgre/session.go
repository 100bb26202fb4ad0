package postgre

import (
	"context"
	"database/sql"

	"echonote/internal/model"
	repo "echonote/internal/user/repository"
)

// CreateSession inserts a new session row.
func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) (model.Session, error) {
	const query = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING token, user_id, expires_at`

	var s model.Session
	err := r.db.QueryRowContext(ctx, query, opt.Token, opt.UserID, opt.ExpiresAt).Scan(
		&s.Token, &s.UserID, &s.ExpiresAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return model.Session{}, repo.ErrFailedToInsertSession
	}
	return s, nil
}

// GetSession returns a zero-value Session when the token is unknown.
func (r *implRepository) GetSession(ctx context.Context, token string) (model.Session, error) {
	const query = `
		SELECT token, user_id, expires_at
		FROM sessions
		WHERE token = $1`

	var s model.Session
	err := r.db.QueryRowContext(ctx, query, token).Scan(&s.Token, &s.UserID, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repo.ErrFailedToGetSession
	}
	return s, nil
}

// DeleteSession removes a session row. Unknown tokens are a no-op.
func (r *implRepository) DeleteSession(ctx context.Context, token string) error {
	const query = `DELETE FROM sessions WHERE token = $1`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDeleteSession
	}
	return nil
}
