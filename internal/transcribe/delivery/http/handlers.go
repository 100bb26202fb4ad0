package http

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"echonote/pkg/response"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MiB

var errAudioRequired = errors.New("audio file is required")

// Transcribe godoc
// @Summary     Transcribe an audio recording
// @Description Accepts a multipart audio file and returns its speech-to-text transcript.
// @Tags        Transcribe
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio file (LINEAR16 WAV)"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Transcription service unavailable"
// @Router      /api/v1/transcribe [POST]
// @Security    BearerAuth
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	if h.transcriber == nil {
		response.ServiceUnavailable(c, "transcription service not configured")
		return
	}

	audio, err := h.readAudioFile(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	transcript, err := h.transcriber.Transcribe(ctx, audio)
	if err != nil {
		h.l.Errorf(ctx, "transcriber.Transcribe: %v", err)
		response.ServiceUnavailable(c, "transcription service unavailable, please retry")
		return
	}

	response.OK(c, transcribeResp{Transcript: transcript})
}

// Upload godoc
// @Summary     Upload an audio recording
// @Description Stores a multipart audio file under a generated name for later processing.
// @Tags        Transcribe
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Audio file"
// @Success     200 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/uploads [POST]
// @Security    BearerAuth
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile("audio")
	if err != nil {
		response.Error(c, errAudioRequired, nil)
		return
	}
	if file.Size > h.maxBytes {
		response.Error(c, errors.New("file too large"), nil)
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.l.Errorf(ctx, "uploads: mkdir %s: %v", h.uploadDir, err)
		response.InternalError(c)
		return
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.l.Errorf(ctx, "uploads: save %s: %v", dst, err)
		response.InternalError(c)
		return
	}

	response.OK(c, uploadResp{Name: name, Size: file.Size})
}

func (h *handler) readAudioFile(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("audio")
	if err != nil {
		return nil, errAudioRequired
	}
	if file.Size > h.maxBytes {
		return nil, errors.New("file too large")
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, h.maxBytes))
}

type transcribeResp struct {
	Transcript string `json:"transcript"`
}

type uploadResp struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
