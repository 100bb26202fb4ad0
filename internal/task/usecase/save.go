package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"echonote/internal/model"
	"echonote/internal/task"
	"echonote/internal/task/repository"
	"echonote/pkg/datemath"
	"echonote/pkg/gcalendar"
)

// Save runs the full pipeline: transcript, prompt, extraction, normalization,
// due-date resolution, persistence.
//
// Persistence is at-least-once with no rollback: rows committed before a
// mid-batch failure are kept and counted, the failure is propagated for the
// remainder, and a caller that retries the whole run may create duplicates.
// Identical transcripts are never deduplicated between runs.
func (uc *implUseCase) Save(ctx context.Context, sc model.Scope, input task.SaveInput) (task.SaveOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return task.SaveOutput{Count: 0, Tasks: []model.Task{}}, nil
	}

	uc.l.Infof(ctx, "task.Save: user=%s transcript_length=%d", sc.UserID, len(input.Transcript))

	candidates, err := uc.extractCandidates(ctx, input.Transcript)
	if err != nil {
		// Extraction failure is fatal to the whole run: nothing is saved.
		return task.SaveOutput{}, err
	}

	today := uc.today()
	saved := make([]model.Task, 0, len(candidates))

	for _, cand := range candidates {
		if strings.TrimSpace(cand.Text) == "" {
			continue
		}

		var dueDate *string
		if resolved := datemath.Resolve(cand.Due, today); resolved != "" {
			dueDate = &resolved
		}

		created, createErr := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			OwnerID: sc.UserID,
			Name:    cand.Text,
			DueDate: dueDate,
			RawText: input.Transcript,
		})
		if createErr != nil {
			uc.l.Errorf(ctx, "task.Save: persistence failed after %d task(s): %v", len(saved), createErr)
			return task.SaveOutput{Count: len(saved), Tasks: saved}, fmt.Errorf("failed to persist task %q: %w", cand.Text, createErr)
		}

		uc.tryCreateCalendarEvent(ctx, cand)
		saved = append(saved, created)
	}

	uc.l.Infof(ctx, "task.Save: user=%s saved=%d", sc.UserID, len(saved))
	return task.SaveOutput{Count: len(saved), Tasks: saved}, nil
}

// tryCreateCalendarEvent creates a calendar event for candidates that carry a
// concrete schedule. Best effort: failures are logged, never fatal.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, cand task.Candidate) {
	if uc.calendar == nil || cand.StartDate == "" || cand.StartTime == "" {
		return
	}

	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", cand.StartDate+" "+cand.StartTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "task.Save: unusable event schedule %q %q: %v", cand.StartDate, cand.StartTime, err)
		return
	}

	end := start.Add(time.Hour)
	if cand.EndDate != "" && cand.EndTime != "" {
		if parsed, endErr := time.ParseInLocation("2006-01-02 15:04", cand.EndDate+" "+cand.EndTime, loc); endErr == nil {
			end = parsed
		}
	}

	if _, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:   cand.Text,
		StartTime: start,
		EndTime:   end,
		Timezone:  uc.timezone,
	}); err != nil {
		uc.l.Warnf(ctx, "task.Save: calendar event creation failed for %q (non-fatal): %v", cand.Text, err)
	}
}
