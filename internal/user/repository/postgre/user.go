package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"echonote/internal/model"
	repo "echonote/internal/user/repository"
)

// CreateUser inserts a new user row. A unique violation on the username maps
// to ErrDuplicateUsername so the use case can report the conflict.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, username, password_hash, created_at`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Username, opt.PasswordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, repo.ErrDuplicateUsername
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsertUser
	}
	return u, nil
}

// GetUserByUsername returns a zero-value User when the username is unknown.
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByUsername"), err)
		return model.User{}, repo.ErrFailedToGetUser
	}
	return u, nil
}
