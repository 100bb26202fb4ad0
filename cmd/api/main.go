package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver

	"echonote/config"
	_ "echonote/docs" // Swagger docs
	"echonote/internal/httpserver"
	"echonote/pkg/gcalendar"
	"echonote/pkg/gemini"
	"echonote/pkg/log"
	"echonote/pkg/speech"
)

// @title       EchoNote API
// @description Turns spoken-note transcripts into structured tasks with Gemini LLM extraction, Google Speech-to-Text, and Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EchoNote...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error(ctx, "Failed to ping Postgres: ", err)
		return
	}
	logger.Info(ctx, "Postgres connected")

	// 4. Gemini extraction client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.Timeout > 0 {
		geminiClient.SetTimeout(cfg.Gemini.Timeout)
	}
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			if cfg.GoogleCalendar.CalendarID != "" {
				calendarClient.SetCalendarID(cfg.GoogleCalendar.CalendarID)
			}
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Speech-to-text client (optional)
	var transcriber speech.ITranscriber
	if cfg.Speech.CredentialsPath != "" {
		recCfg := speech.DefaultRecognitionConfig()
		if cfg.Speech.LanguageCode != "" {
			recCfg.LanguageCode = cfg.Speech.LanguageCode
		}
		speechClient, spErr := speech.NewClientFromCredentialsFile(ctx, cfg.Speech.CredentialsPath, recCfg)
		if spErr != nil {
			logger.Warnf(ctx, "Speech-to-text not available (optional): %v", spErr)
		} else {
			transcriber = speechClient
			logger.Info(ctx, "Speech-to-text initialized")
		}
	}

	// 7. HTTP Server
	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     db,
		LLM:            geminiClient,
		Transcriber:    transcriber,
		Timezone:       cfg.Timezone,
		SessionTTL:     cfg.Auth.SessionTTL,
		RatePerMin:     cfg.RateLimitPerMin,
		UploadDir:      cfg.Upload.Dir,
		MaxUploadBytes: cfg.Upload.MaxBytes,
	}
	if calendarClient != nil {
		srvCfg.Calendar = calendarClient
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
