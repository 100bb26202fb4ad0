package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"echonote/internal/model"
	"echonote/internal/task"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase is a hand-rolled task.UseCase stub.
type mockUseCase struct {
	extractOut task.ExtractOutput
	extractErr error
	saveOut    task.SaveOutput
	saveErr    error
	listOut    task.ListOutput
	listErr    error
	updateOut  task.UpdateOutput
	updateErr  error
	deleteErr  error
}

func (m *mockUseCase) Extract(ctx context.Context, sc model.Scope, in task.ExtractInput) (task.ExtractOutput, error) {
	return m.extractOut, m.extractErr
}

func (m *mockUseCase) Save(ctx context.Context, sc model.Scope, in task.SaveInput) (task.SaveOutput, error) {
	return m.saveOut, m.saveErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in task.UpdateInput) (task.UpdateOutput, error) {
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.deleteErr
}

func perform(h *handler, method, path, body string, register func(*gin.Engine)) *httptest.ResponseRecorder {
	router := gin.New()
	register(router)

	var buf bytes.Buffer
	if body != "" {
		buf.WriteString(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaveHandler(t *testing.T) {
	t.Run("Success returns count and tasks", func(t *testing.T) {
		due := "2024-01-02"
		uc := &mockUseCase{saveOut: task.SaveOutput{
			Count: 1,
			Tasks: []model.Task{{ID: "t1", Name: "Finish homework", DueDate: &due}},
		}}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodPost, "/tasks", `{"transcript": "finish homework tomorrow"}`, func(r *gin.Engine) {
			r.POST("/tasks", h.Save)
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				Count int `json:"count"`
				Tasks []struct {
					ID      string  `json:"id"`
					Name    string  `json:"name"`
					DueDate *string `json:"due_date"`
				} `json:"tasks"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Data.Count != 1 || len(resp.Data.Tasks) != 1 {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
		if resp.Data.Tasks[0].DueDate == nil || *resp.Data.Tasks[0].DueDate != "2024-01-02" {
			t.Errorf("due date not carried through: %+v", resp.Data.Tasks[0])
		}
	})

	t.Run("Extraction outage maps to 503", func(t *testing.T) {
		uc := &mockUseCase{saveErr: task.ErrExtraction}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodPost, "/tasks", `{"transcript": "buy milk"}`, func(r *gin.Engine) {
			r.POST("/tasks", h.Save)
		})

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Persistence failure maps to 500 with partial count", func(t *testing.T) {
		uc := &mockUseCase{
			saveOut: task.SaveOutput{Count: 2, Tasks: []model.Task{{ID: "t1"}, {ID: "t2"}}},
			saveErr: errors.New("storage unavailable"),
		}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodPost, "/tasks", `{"transcript": "three things"}`, func(r *gin.Engine) {
			r.POST("/tasks", h.Save)
		})

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		var resp struct {
			Data struct {
				Count int `json:"count"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp.Data.Count != 2 {
			t.Errorf("partial count must be reported, got %d", resp.Data.Count)
		}
	})
}

func TestExtractHandler(t *testing.T) {
	t.Run("Candidates are returned without persistence", func(t *testing.T) {
		uc := &mockUseCase{extractOut: task.ExtractOutput{
			Candidates: []task.Candidate{{Text: "Buy milk", Due: "Friday"}},
		}}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodPost, "/tasks/extract", `{"transcript": "buy milk friday"}`, func(r *gin.Engine) {
			r.POST("/tasks/extract", h.Extract)
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Data struct {
				Tasks []struct {
					Text string `json:"text"`
					Due  string `json:"due"`
				} `json:"tasks"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if len(resp.Data.Tasks) != 1 || resp.Data.Tasks[0].Due != "Friday" {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
	})
}

func TestUpdateDeleteHandlers(t *testing.T) {
	t.Run("Unknown task id maps to 404", func(t *testing.T) {
		uc := &mockUseCase{updateErr: task.ErrTaskNotFound}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodPut, "/tasks/nope", `{"completed": true}`, func(r *gin.Engine) {
			r.PUT("/tasks/:id", h.Update)
		})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Foreign owner delete maps to the same 404", func(t *testing.T) {
		uc := &mockUseCase{deleteErr: task.ErrTaskNotFound}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodDelete, "/tasks/someone-elses", "", func(r *gin.Engine) {
			r.DELETE("/tasks/:id", h.Delete)
		})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Successful delete returns OK envelope", func(t *testing.T) {
		uc := &mockUseCase{}
		h := New(noopLogger{}, uc)

		w := perform(h, http.MethodDelete, "/tasks/t1", "", func(r *gin.Engine) {
			r.DELETE("/tasks/:id", h.Delete)
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
