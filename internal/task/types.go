package task

import "echonote/internal/model"

// Candidate is a task candidate produced by normalizing the model response.
// It lives only within one pipeline invocation and is never persisted as-is.
// Text is the only required field; everything else is kept exactly as the
// model returned it.
type Candidate struct {
	Text       string `json:"text"`
	Due        string `json:"due,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
}

// ExtractInput is the input for extraction without persistence.
type ExtractInput struct {
	Transcript string
}

// ExtractOutput holds the normalized candidates.
type ExtractOutput struct {
	Candidates []Candidate
}

// SaveInput is the input for the full extract-and-save pipeline.
type SaveInput struct {
	Transcript string
}

// SaveOutput reports how many tasks were persisted. On a mid-batch
// persistence failure Count still reflects the rows committed before the
// failure; earlier rows are not rolled back.
type SaveOutput struct {
	Count int
	Tasks []model.Task
}

// ListOutput holds the caller's tasks ordered by creation time descending.
type ListOutput struct {
	Tasks []model.Task
}

// UpdateInput is a partial update: only non-nil fields are applied.
type UpdateInput struct {
	ID        string
	Name      *string
	Completed *bool
	DueDate   *string
}

// UpdateOutput holds the updated task.
type UpdateOutput struct {
	Task model.Task
}
