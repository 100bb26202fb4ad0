package http

import (
	"github.com/gin-gonic/gin"

	"echonote/pkg/log"
	"echonote/pkg/speech"
)

// Handler is the public interface for the transcription HTTP delivery layer.
type Handler interface {
	Transcribe(c *gin.Context)
	Upload(c *gin.Context)
}

type handler struct {
	l           log.Logger
	transcriber speech.ITranscriber
	uploadDir   string
	maxBytes    int64
}

// New creates a new HTTP handler for audio transcription and uploads.
// transcriber may be nil; the transcribe route then reports unavailability.
func New(l log.Logger, transcriber speech.ITranscriber, uploadDir string, maxBytes int64) *handler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &handler{
		l:           l,
		transcriber: transcriber,
		uploadDir:   uploadDir,
		maxBytes:    maxBytes,
	}
}
