package user

import (
	"context"

	"echonote/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// SignUp registers a new account with a bcrypt-hashed password.
	SignUp(ctx context.Context, input SignUpInput) (SignUpOutput, error)
	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// Logout revokes a session token. Unknown tokens are not an error.
	Logout(ctx context.Context, token string) error
	// VerifySession resolves a session token to its live session.
	VerifySession(ctx context.Context, token string) (model.Session, error)
}
