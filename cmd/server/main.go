// @title votesvc API
// @version 1.0
// @description Read-only candidate listing for the vote service.
// @BasePath /
package main

//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go --parseInternal

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"votesvc/config"
	httpdelivery "votesvc/internal/delivery/http"
	"votesvc/internal/delivery/http/controllers"
	"votesvc/internal/delivery/http/middleware"
	"votesvc/internal/repository/postgres"
	"votesvc/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, postgres.PoolConfig{
		URL:          cfg.DBUrl,
		MaxConns:     cfg.DBMaxConn,
		MaxIdleConns: cfg.DBMaxIdleConn,
	})
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to database", "max_conns", cfg.DBMaxConn, "max_idle_conns", cfg.DBMaxIdleConn)

	candidateRepo := postgres.NewCandidateRepository(db)
	listCandidates := usecase.NewListCandidatesUseCase(candidateRepo)

	router := httpdelivery.NewRouter(
		controllers.NewCandidateController(logger, listCandidates),
		controllers.NewHealthController(logger, db),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}
		cancel()
	}

	logger.Info("closing database")
	if err := db.Close(); err != nil {
		logger.Error("close database", "err", err)
	}
	logger.Info("server exited")
}
