package usecase

import (
	"time"

	"echonote/internal/task/repository"
	"echonote/pkg/gcalendar"
	"echonote/pkg/gemini"
	pkgLog "echonote/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      gemini.IGemini
	calendar gcalendar.ICalendar // optional, may be nil
	repo     repository.Repository
	timezone string
	now      func() time.Time
}

// New creates a new task UseCase instance.
//
// The extraction client is injected behind gemini.IGemini and the clock
// behind now, so both can be substituted deterministically in tests.
// calendar may be nil; event creation then silently no-ops.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	calendar gcalendar.ICalendar,
	repo repository.Repository,
	timezone string,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		repo:     repo,
		timezone: timezone,
		now:      now,
	}
}

// today returns the current date in the configured timezone.
func (uc *implUseCase) today() time.Time {
	t := uc.now()
	if loc, err := time.LoadLocation(uc.timezone); err == nil {
		t = t.In(loc)
	}
	return t
}
