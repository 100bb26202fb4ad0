package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"echonote/internal/model"
	repo "echonote/internal/task/repository"
	"echonote/internal/task/repository/inmem"
	"echonote/pkg/gcalendar"
	"echonote/pkg/gemini"
)

// mock logger

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// stubLLM is a deterministic gemini.IGemini stand-in. It records call counts
// so tests can assert the client was (or was not) invoked.
type stubLLM struct {
	text  string
	err   error
	calls int
}

func (s *stubLLM) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: s.text}}}},
		},
	}, nil
}

func (s *stubLLM) Model() string { return "gemini-test" }

// failingRepo wraps the inmem repository and fails CreateTask after a number
// of successful inserts, to exercise mid-batch persistence failure.
type failingRepo struct {
	repo.Repository
	failAfter int
	creates   int
}

func newFailingRepo(failAfter int) *failingRepo {
	return &failingRepo{Repository: inmem.New(), failAfter: failAfter}
}

func (f *failingRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if f.creates >= f.failAfter {
		return model.Task{}, errors.New("storage unavailable")
	}
	f.creates++
	return f.Repository.CreateTask(ctx, opt)
}

func listOptions(ownerID string) repo.ListTasksOptions {
	return repo.ListTasksOptions{OwnerID: ownerID}
}

// stubCalendar records created events.
type stubCalendar struct {
	events []gcalendar.CreateEventRequest
	fail   bool
}

func (s *stubCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if s.fail {
		return nil, fmt.Errorf("calendar unavailable")
	}
	s.events = append(s.events, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "http://cal.link"}, nil
}
