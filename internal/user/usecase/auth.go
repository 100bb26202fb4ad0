package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"echonote/internal/model"
	"echonote/internal/user"
	"echonote/internal/user/repository"
)

// SignUp registers a new account. Passwords are stored only as bcrypt hashes.
func (uc *implUseCase) SignUp(ctx context.Context, input user.SignUpInput) (user.SignUpOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return user.SignUpOutput{}, user.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.SignUp: bcrypt: %v", err)
		return user.SignUpOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return user.SignUpOutput{}, user.ErrUsernameTaken
		}
		uc.l.Errorf(ctx, "user.SignUp: %v", err)
		return user.SignUpOutput{}, err
	}

	uc.l.Infof(ctx, "user.SignUp: created user=%s", created.ID)
	return user.SignUpOutput{User: created}, nil
}

// Login verifies credentials and opens a session. Unknown usernames and wrong
// passwords produce the same error so accounts cannot be enumerated.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	found, err := uc.repo.GetUserByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		uc.l.Errorf(ctx, "user.Login: %v", err)
		return user.LoginOutput{}, err
	}
	if found.ID == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)); err != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	session, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		Token:     uuid.NewString(),
		UserID:    found.ID,
		ExpiresAt: uc.now().Add(uc.sessionTTL),
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.Login: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      found,
	}, nil
}

// Logout revokes a session. Revoking an unknown token is not an error.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.repo.DeleteSession(ctx, token); err != nil {
		uc.l.Errorf(ctx, "user.Logout: %v", err)
		return err
	}
	return nil
}

// VerifySession resolves a token to its live session. Expired sessions are
// deleted on sight.
func (uc *implUseCase) VerifySession(ctx context.Context, token string) (model.Session, error) {
	if token == "" {
		return model.Session{}, user.ErrSessionNotFound
	}

	session, err := uc.repo.GetSession(ctx, token)
	if err != nil {
		uc.l.Errorf(ctx, "user.VerifySession: %v", err)
		return model.Session{}, err
	}
	if session.Token == "" {
		return model.Session{}, user.ErrSessionNotFound
	}
	if !uc.now().Before(session.ExpiresAt) {
		_ = uc.repo.DeleteSession(ctx, token)
		return model.Session{}, user.ErrSessionNotFound
	}
	return session, nil
}
