package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"echonote/internal/middleware"
	"echonote/internal/task"
	"echonote/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from a transcript
// @Description Runs LLM extraction over a free-form transcript and returns normalized task candidates without persisting anything.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Transcript"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Extraction service unavailable"
// @Router      /api/v1/tasks/extract [POST]
// @Security    BearerAuth
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Save godoc
// @Summary     Extract and persist tasks from a transcript
// @Description Runs the full pipeline: extraction, normalization, due-date resolution, persistence. An empty transcript returns count 0 without calling the extraction service.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body saveReq true "Transcript"
// @Success     200 {object} saveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Persistence failure, count reports rows already saved"
// @Failure     503 {object} response.Resp "Extraction service unavailable"
// @Router      /api/v1/tasks [POST]
// @Security    BearerAuth
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSaveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Save(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		if errors.Is(err, task.ErrExtraction) {
			h.respondError(c, err)
			return
		}
		// Mid-batch persistence failure: the rows already written stay
		// written, so report how many made it.
		c.JSON(http.StatusInternalServerError, response.Resp{
			ErrorCode: response.InternalServerErrorCode,
			Message:   response.DefaultErrorMessage,
			Data:      h.newSaveResp(output),
		})
		return
	}

	response.OK(c, h.newSaveResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, newest first.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
// @Security    BearerAuth
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update (name, completion, due date) to one of the caller's tasks.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
// @Security    BearerAuth
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes one of the caller's tasks.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
// @Security    BearerAuth
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
