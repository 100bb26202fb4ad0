package usecase

import (
	"time"

	"echonote/internal/user/repository"
	pkgLog "echonote/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	sessionTTL time.Duration
	now        func() time.Time
}

// New creates a new user UseCase instance. The clock is injected so session
// expiry can be tested deterministically.
func New(l pkgLog.Logger, repo repository.Repository, sessionTTL time.Duration, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		sessionTTL: sessionTTL,
		now:        now,
	}
}
