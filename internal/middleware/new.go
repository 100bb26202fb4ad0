package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"echonote/internal/user"
	"echonote/pkg/log"

	"golang.org/x/time/rate"
)

const (
	sessionCacheSize = 1024
	limiterCacheSize = 1024
)

type Middleware struct {
	l          log.Logger
	userUC     user.UseCase
	sessions   *lru.Cache[string, cachedSession]
	limiters   *lru.Cache[string, *rate.Limiter]
	ratePerMin int
}

func New(l log.Logger, userUC user.UseCase, ratePerMin int) Middleware {
	sessions, _ := lru.New[string, cachedSession](sessionCacheSize)
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)
	return Middleware{
		l:          l,
		userUC:     userUC,
		sessions:   sessions,
		limiters:   limiters,
		ratePerMin: ratePerMin,
	}
}
