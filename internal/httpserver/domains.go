package httpserver

import (
	"context"

	"echonote/internal/middleware"
	taskHTTP "echonote/internal/task/delivery/http"
	taskRepo "echonote/internal/task/repository/postgre"
	taskUC "echonote/internal/task/usecase"
	transcribeHTTP "echonote/internal/transcribe/delivery/http"
	userHTTP "echonote/internal/user/delivery/http"
	userRepo "echonote/internal/user/repository/postgre"
	userUC "echonote/internal/user/usecase"
)

// registerDomainRoutes wires every domain under /api/v1.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// User domain first: the auth middleware needs its use case.
	uRepo := userRepo.New(srv.postgresDB, srv.l)
	uUC := userUC.New(srv.l, uRepo, srv.sessionTTL, nil)

	mw := middleware.New(srv.l, uUC, srv.ratePerMin)

	uHandler := userHTTP.New(srv.l, uUC, mw.Invalidate)
	userHTTP.RegisterRoutes(api, uHandler, mw)
	srv.l.Infof(ctx, "User domain registered")

	// Task domain: the transcript-to-tasks pipeline.
	tRepo := taskRepo.New(srv.postgresDB, srv.l)
	tUC := taskUC.New(srv.l, srv.llm, srv.calendar, tRepo, srv.timezone, nil)
	tHandler := taskHTTP.New(srv.l, tUC)
	taskHTTP.RegisterRoutes(api, tHandler, mw)
	srv.l.Infof(ctx, "Task domain registered")

	// Transcription and uploads.
	trHandler := transcribeHTTP.New(srv.l, srv.transcriber, srv.uploadDir, srv.maxUploadBytes)
	transcribeHTTP.RegisterRoutes(api, trHandler, mw)
	srv.l.Infof(ctx, "Transcribe domain registered")

	return nil
}
