package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/okeefe/babblebox/internal/api"
	"github.com/okeefe/babblebox/internal/catalog"
	"github.com/okeefe/babblebox/internal/config"
	"github.com/okeefe/babblebox/internal/logging"
	"github.com/okeefe/babblebox/internal/nav"
	"github.com/okeefe/babblebox/internal/speech"
)

func main() {
	// A .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		// Use stderr before logger is initialized
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize structured logger
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting babblebox", "version", "0.1.0")

	// Warn if bearer token auth is disabled
	if cfg.AuthDisabled() {
		logger.Warn("HTTP bearer authentication is disabled (BEARER_TOKEN is empty)")
	}

	// Log loaded configuration (without sensitive values)
	logger.Info("configuration loaded",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"http_port", cfg.HTTPPort,
		"manifest_path", cfg.ManifestPath,
		"splash_delay", cfg.SplashDelay,
		"poll_interval", cfg.PollInterval,
	)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig.String())
		cancel()
	}()

	// The catalog loads exactly once; any problem aborts startup.
	cat, err := catalog.Load(cfg.ManifestPath)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "categories", cat.Len())

	// Pick a speech engine: espeak-ng when available, otherwise a mock
	// so the app still navigates (nothing is spoken).
	var engine speech.Engine
	espeak, err := speech.NewEspeakEngine(speech.EspeakConfig{BinaryPath: cfg.EspeakPath}, logger)
	if err != nil {
		logger.Warn("espeak-ng unavailable, speech will be silent", "error", err)
		engine = speech.NewMockEngine()
	} else {
		engine = espeak
		logger.Info("espeak-ng engine ready", "binary", cfg.EspeakPath)
	}

	controller := speech.NewController(engine, speech.Options{
		Lang:          cfg.SpeechLang,
		Rate:          cfg.SpeechRate,
		Pitch:         cfg.SpeechPitch,
		Volume:        cfg.SpeechVolume,
		PreferredName: cfg.PreferredVoice,
		PollInterval:  cfg.PollInterval,
	}, logger)
	defer controller.Close()

	controller.SetListener(func(ev speech.Event) {
		if ev.Kind == speech.EventStarted {
			logger.Debug("speaking started", "utterance_id", ev.UtteranceID, "text", ev.Text)
		} else {
			logger.Debug("speaking ended", "utterance_id", ev.UtteranceID, "text", ev.Text)
		}
	})

	// The attention chime is owned by the UI layer; the hook stays nil here.
	machine := nav.NewMachine(cat, cfg.SplashDelay, nil, logger)
	defer machine.Close()
	machine.Start()

	// Create and start HTTP server
	server := api.New(cfg, logger, cat, machine, controller)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown HTTP server", "error", err)
	}

	logger.Info("shutdown complete")
}
