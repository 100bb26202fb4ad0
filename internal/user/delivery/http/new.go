package http

import (
	"github.com/gin-gonic/gin"

	"echonote/internal/user"
	"echonote/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	SignUp(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase

	// invalidate drops a revoked token from the auth session cache.
	invalidate func(token string)
}

// New creates a new HTTP handler for the user domain. invalidate may be nil
// when no session cache is in front of the store.
func New(l log.Logger, uc user.UseCase, invalidate func(token string)) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		invalidate: invalidate,
	}
}
