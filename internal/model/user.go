package model

import "time"

// User is a registered account. Only the id travels through the task core;
// credentials stay inside the user domain.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a bearer login session.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
