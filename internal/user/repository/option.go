package repository

import "time"

type CreateUserOptions struct {
	Username     string
	PasswordHash string
}

type CreateSessionOptions struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
