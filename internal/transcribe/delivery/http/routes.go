package http

import (
	"github.com/gin-gonic/gin"

	"echonote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/transcribe", mw.Auth(), mw.RateLimit(), h.Transcribe)
	rg.POST("/uploads", mw.Auth(), h.Upload)
}
