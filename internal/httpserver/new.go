package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"echonote/pkg/gcalendar"
	"echonote/pkg/gemini"
	"echonote/pkg/log"
	"echonote/pkg/speech"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	postgresDB *sql.DB

	// External services
	llm         gemini.IGemini
	calendar    gcalendar.ICalendar
	transcriber speech.ITranscriber

	// Domain knobs
	timezone       string
	sessionTTL     time.Duration
	ratePerMin     int
	uploadDir      string
	maxUploadBytes int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	LLM         gemini.IGemini
	Calendar    gcalendar.ICalendar
	Transcriber speech.ITranscriber

	Timezone       string
	SessionTTL     time.Duration
	RatePerMin     int
	UploadDir      string
	MaxUploadBytes int64
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		llm:            cfg.LLM,
		calendar:       cfg.Calendar,
		transcriber:    cfg.Transcriber,
		timezone:       cfg.Timezone,
		sessionTTL:     cfg.SessionTTL,
		ratePerMin:     cfg.RatePerMin,
		uploadDir:      cfg.UploadDir,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("extraction client is required")
	}
	return nil
}
