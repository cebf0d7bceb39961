package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alkime/itranscript/internal/app"
	"github.com/alkime/itranscript/internal/config"
	"github.com/alkime/itranscript/internal/logger"
	"github.com/alkime/itranscript/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	lg := logger.SetupLogger(cfg)

	lg.Info("Starting iTranscript server",
		"env", cfg.Env,
		"port", cfg.Port,
		"gating", cfg.GatingMode,
		"require_patient", cfg.RequirePatientLink,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, app.WithLogger(lg))
	if err != nil {
		lg.Error("Failed to build session", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	srv, err := server.New(cfg, lg, a)
	if err != nil {
		lg.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := server.Run(ctx, srv); err != nil {
		lg.Error("Server stopped", "error", err)
		os.Exit(1) //nolint:gocritic // deferred cleanup is best effort
	}
}
