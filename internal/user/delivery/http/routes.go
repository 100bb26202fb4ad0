package http

import (
	"github.com/gin-gonic/gin"

	"echonote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Sign-up and login are public; logout requires a session so the token being
// revoked is the caller's own.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/sign-up", h.SignUp)
		auth.POST("/login", h.Login)
		auth.POST("/logout", mw.Auth(), h.Logout)
	}
}
