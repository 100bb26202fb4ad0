package http

import (
	"time"

	"echonote/internal/model"
	"echonote/internal/task"
)

// --- Request DTOs ---

type extractReq struct {
	Transcript string `json:"transcript"`
}

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{Transcript: r.Transcript}
}

type saveReq struct {
	Transcript string `json:"transcript"`
}

func (r saveReq) toInput() task.SaveInput {
	return task.SaveInput{Transcript: r.Transcript}
}

type updateReq struct {
	ID        string  `json:"-"` // populated from URI param
	Name      *string `json:"name"      binding:"omitempty,min=1,max=500"`
	Completed *bool   `json:"completed"`
	DueDate   *string `json:"due_date"  binding:"omitempty,max=100"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		Name:      r.Name,
		Completed: r.Completed,
		DueDate:   r.DueDate,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	DueDate   *string   `json:"due_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Name:      t.Name,
		Completed: t.Completed,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
	}
}

type candidateResp struct {
	Text       string `json:"text"`
	Due        string `json:"due,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
}

type extractResp struct {
	Tasks []candidateResp `json:"tasks"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	tasks := make([]candidateResp, len(out.Candidates))
	for i, cand := range out.Candidates {
		tasks[i] = candidateResp{
			Text:       cand.Text,
			Due:        cand.Due,
			StartDate:  cand.StartDate,
			EndDate:    cand.EndDate,
			StartTime:  cand.StartTime,
			EndTime:    cand.EndTime,
			Recurrence: cand.Recurrence,
		}
	}
	return extractResp{Tasks: tasks}
}

type saveResp struct {
	Count int        `json:"count"`
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newSaveResp(out task.SaveOutput) saveResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return saveResp{Count: out.Count, Tasks: tasks}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
