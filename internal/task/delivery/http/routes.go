package http

import (
	"github.com/gin-gonic/gin"

	"echonote/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require an authenticated session; the extraction routes are
// additionally rate limited because they fan out to the LLM.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("", mw.Auth(), mw.RateLimit(), h.Save)
		tasks.POST("/extract", mw.Auth(), mw.RateLimit(), h.Extract)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
