package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"echonote/internal/task"
	"echonote/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
// Not-found and foreign-owner lookups produce the same body on purpose.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, "task not found")
	case errors.Is(err, task.ErrExtraction):
		response.ServiceUnavailable(c, "task extraction service unavailable, please retry")
	default:
		response.InternalError(c)
	}
}
