package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"echonote/internal/user"
	"echonote/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		c.JSON(http.StatusConflict, response.Resp{
			ErrorCode: http.StatusConflict,
			Message:   user.ErrUsernameTaken.Error(),
		})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Resp{
			ErrorCode: response.UnauthorizedErrorCode,
			Message:   user.ErrInvalidCredentials.Error(),
		})
	default:
		response.InternalError(c)
	}
}
