package repository

import "errors"

var (
	ErrFailedToInsertUser    = errors.New("failed to insert user")
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrFailedToGetUser       = errors.New("failed to get user")
	ErrFailedToInsertSession = errors.New("failed to insert session")
	ErrFailedToGetSession    = errors.New("failed to get session")
	ErrFailedToDeleteSession = errors.New("failed to delete session")
)
