package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"echonote/internal/model"
	"echonote/internal/task"
	"echonote/internal/task/repository/inmem"
	"echonote/internal/task/usecase"
	"echonote/pkg/gemini"
)

// fixedNow pins the pipeline clock to Monday, January 1, 2024.
func fixedNow() time.Time {
	return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Success Path resolves relative due date", func(t *testing.T) {
		llm := &stubLLM{text: `[{"text": "Finish math homework", "due": "tomorrow"}]`}
		repo := inmem.New()
		uc := usecase.New(&mockLogger{}, llm, nil, repo, "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "Finish math homework tomorrow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 {
			t.Fatalf("expected 1 saved task, got %d", out.Count)
		}

		saved := out.Tasks[0]
		if saved.Name != "Finish math homework" {
			t.Errorf("unexpected task name %q", saved.Name)
		}
		if saved.DueDate == nil || *saved.DueDate != "2024-01-02" {
			t.Errorf("expected due date 2024-01-02, got %v", saved.DueDate)
		}
		if saved.RawText != "Finish math homework tomorrow" {
			t.Errorf("raw transcript must be kept for audit, got %q", saved.RawText)
		}
		if saved.OwnerID != "u1" {
			t.Errorf("unexpected owner %q", saved.OwnerID)
		}
	})

	t.Run("Unresolvable due phrase passes through verbatim", func(t *testing.T) {
		llm := &stubLLM{text: `[{"text": "Call grandma", "due": "when the weather clears"}]`}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "call grandma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tasks[0].DueDate == nil || *out.Tasks[0].DueDate != "when the weather clears" {
			t.Errorf("unresolved phrase must be kept verbatim, got %v", out.Tasks[0].DueDate)
		}
	})

	t.Run("Empty transcript never calls the LLM", func(t *testing.T) {
		llm := &stubLLM{text: `[]`}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 0 {
			t.Errorf("expected 0 saved, got %d", out.Count)
		}
		if llm.calls != 0 {
			t.Errorf("extraction client must not be invoked for empty transcript, got %d calls", llm.calls)
		}
	})

	t.Run("Extraction failure aborts with no saves", func(t *testing.T) {
		llm := &stubLLM{err: &gemini.APIError{StatusCode: 503, Body: "overloaded"}}
		repo := inmem.New()
		uc := usecase.New(&mockLogger{}, llm, nil, repo, "UTC", fixedNow)

		_, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "buy milk"})
		if !errors.Is(err, task.ErrExtraction) {
			t.Fatalf("expected ErrExtraction, got %v", err)
		}

		tasks, _ := repo.ListTasks(ctx, listOptions("u1"))
		if len(tasks) != 0 {
			t.Errorf("no tasks may be saved when extraction fails, got %d", len(tasks))
		}
	})

	t.Run("Malformed model output degrades to zero saved", func(t *testing.T) {
		llm := &stubLLM{text: "I could not find any tasks, sorry!"}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "mumbling"})
		if err != nil {
			t.Fatalf("malformed output must not error, got %v", err)
		}
		if out.Count != 0 {
			t.Errorf("expected 0 saved, got %d", out.Count)
		}
	})

	t.Run("Candidates without text are skipped", func(t *testing.T) {
		llm := &stubLLM{text: `[{"due": "tomorrow"}, {"text": "Real task"}, {"text": "  "}]`}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "stuff"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 || out.Tasks[0].Name != "Real task" {
			t.Errorf("expected only the valid candidate saved, got %+v", out.Tasks)
		}
	})

	t.Run("Mid-batch persistence failure keeps earlier rows", func(t *testing.T) {
		llm := &stubLLM{text: `[{"text": "first"}, {"text": "second"}, {"text": "third"}]`}
		repo := newFailingRepo(1)
		uc := usecase.New(&mockLogger{}, llm, nil, repo, "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "three things"})
		if err == nil {
			t.Fatalf("expected propagated persistence failure")
		}
		if out.Count != 1 {
			t.Errorf("expected count of rows committed before the failure (1), got %d", out.Count)
		}

		tasks, _ := repo.ListTasks(ctx, listOptions("u1"))
		if len(tasks) != 1 {
			t.Errorf("earlier rows must not be rolled back, got %d", len(tasks))
		}
	})

	t.Run("Identical transcripts are never deduplicated", func(t *testing.T) {
		llm := &stubLLM{text: `[{"text": "Water the plants", "due": "today"}]`}
		repo := inmem.New()
		uc := usecase.New(&mockLogger{}, llm, nil, repo, "UTC", fixedNow)

		for i := 0; i < 2; i++ {
			if _, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "water the plants today"}); err != nil {
				t.Fatalf("unexpected error on run %d: %v", i, err)
			}
		}

		tasks, _ := repo.ListTasks(ctx, listOptions("u1"))
		if len(tasks) != 2 {
			t.Errorf("expected two distinct stored tasks, got %d", len(tasks))
		}
		if len(tasks) == 2 && tasks[0].ID == tasks[1].ID {
			t.Errorf("stored tasks must have distinct ids")
		}
	})

	t.Run("Scheduled candidate creates a calendar event best effort", func(t *testing.T) {
		llm := &stubLLM{text: `[{"text": "Team sync", "start_date": "2024-01-03", "start_time": "09:00", "end_date": "2024-01-03", "end_time": "10:00"}]`}
		cal := &stubCalendar{}
		uc := usecase.New(&mockLogger{}, llm, cal, inmem.New(), "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "team sync wednesday 9am"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 {
			t.Fatalf("expected 1 saved task, got %d", out.Count)
		}
		if len(cal.events) != 1 || cal.events[0].Summary != "Team sync" {
			t.Errorf("expected one calendar event, got %+v", cal.events)
		}
	})

	t.Run("Calendar failure is non-fatal", func(t *testing.T) {
		llm := &stubLLM{text: `[{"text": "Team sync", "start_date": "2024-01-03", "start_time": "09:00"}]`}
		cal := &stubCalendar{fail: true}
		uc := usecase.New(&mockLogger{}, llm, cal, inmem.New(), "UTC", fixedNow)

		out, err := uc.Save(ctx, sc, task.SaveInput{Transcript: "team sync"})
		if err != nil {
			t.Fatalf("calendar failure must not fail the run: %v", err)
		}
		if out.Count != 1 {
			t.Errorf("task must still be saved, got count %d", out.Count)
		}
	})
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Empty transcript short-circuits", func(t *testing.T) {
		llm := &stubLLM{text: `[]`}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Extract(ctx, sc, task.ExtractInput{Transcript: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Candidates) != 0 || llm.calls != 0 {
			t.Errorf("expected no candidates and no LLM call, got %d candidates, %d calls", len(out.Candidates), llm.calls)
		}
	})

	t.Run("Code-fenced JSON is normalized", func(t *testing.T) {
		llm := &stubLLM{text: "```json\n[{\"text\": \"Buy milk\", \"due\": \"Friday\"}]\n```"}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Extract(ctx, sc, task.ExtractInput{Transcript: "buy milk friday"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Candidates) != 1 || out.Candidates[0].Text != "Buy milk" || out.Candidates[0].Due != "Friday" {
			t.Errorf("unexpected candidates: %+v", out.Candidates)
		}
	})

	t.Run("Prose around JSON is tolerated", func(t *testing.T) {
		llm := &stubLLM{text: "Here are the tasks:\n[{\"text\": \"Pack bags\"}]\nLet me know!"}
		uc := usecase.New(&mockLogger{}, llm, nil, inmem.New(), "UTC", fixedNow)

		out, err := uc.Extract(ctx, sc, task.ExtractInput{Transcript: "pack bags"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Candidates) != 1 || out.Candidates[0].Text != "Pack bags" {
			t.Errorf("unexpected candidates: %+v", out.Candidates)
		}
	})
}
