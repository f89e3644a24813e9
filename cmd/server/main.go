package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/primelaser/backend/internal/config"
	"github.com/primelaser/backend/internal/handler"
	"github.com/primelaser/backend/internal/logging"
	"github.com/primelaser/backend/internal/mailer"
	"github.com/primelaser/backend/internal/repository"
	"github.com/primelaser/backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("configuration error", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The supervisor connects in the background; startup never blocks on
	// the store and connection failures are never fatal.
	supervisor := repository.NewSupervisor(cfg.Database)
	supervisor.Start(ctx)

	notifier := mailer.New(cfg.Email)
	contactRepo := repository.NewMongoContactRepository(supervisor, cfg.Database.OpTimeout)
	contactService := service.NewContactService(contactRepo, supervisor, notifier)

	h := handler.New(supervisor, notifier.Enabled(), cfg.Env, cfg.Server.CORSOrigin)
	contactHandler := handler.NewContactHandler(contactService, cfg.Debug.Token, cfg.IsProduction())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("GET /api/db-status", h.DBStatus)
	mux.HandleFunc("/", h.NotFound)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"environment", cfg.Env,
			"email_enabled", notifier.Enabled(),
			"database", cfg.Database.Name,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	cancel()
	supervisor.Shutdown(shutdownCtx)
}
