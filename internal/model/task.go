package model

import "time"

// Task is a durable task record owned by exactly one user.
//
// DueDate, when non-nil, is either a canonical YYYY-MM-DD date or the
// speaker's original due phrase kept verbatim when it could not be resolved.
// It is never silently dropped or rewritten.
type Task struct {
	ID        string    // generated uuid, immutable
	OwnerID   string    // immutable after creation
	Name      string
	Completed bool
	DueDate   *string
	RawText   string    // originating transcript, kept for audit
	CreatedAt time.Time // assigned at creation; default list order is newest first
}
