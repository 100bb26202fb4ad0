package task

import "errors"

// Domain-specific errors for the task package.
var (
	// ErrExtraction covers every extraction-service failure class:
	// unreachable, unauthorized, over quota, timed out. Fatal to the run;
	// retryable by the caller.
	ErrExtraction = errors.New("task extraction service unavailable")

	// ErrTaskNotFound is returned both when a task id does not exist and
	// when it belongs to another owner, so foreign ids are never confirmed.
	ErrTaskNotFound = errors.New("task not found")
)
