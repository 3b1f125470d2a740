// SPDX-License-Identifier: MIT

// Command visualizerd serves algorithm frame sequences and playback sessions
// over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/algoviz/catalog"
	"github.com/katalvlaran/algoviz/internal/api"
	"github.com/katalvlaran/algoviz/internal/platform/config"
	"github.com/katalvlaran/algoviz/internal/platform/logger"
	"github.com/katalvlaran/algoviz/internal/platform/metrics"
	"github.com/katalvlaran/algoviz/playback"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	cfg, err := config.Resolve()
	if err != nil {
		boot := logger.New("error", "json")
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if _, err = catalog.List(); err != nil {
		log.Fatal().Err(err).Msg("catalog unavailable")
	}

	store := api.NewStore(cfg.MaxSessions, playback.WithDelay(cfg.DefaultDelay()))
	met := metrics.New()
	h := api.NewHandler(store, catalog.NewGenerator(cfg.MaxInputSize, cfg.MaxFrames), log, met)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Int("max_sessions", cfg.MaxSessions).
		Int("max_input_size", cfg.MaxInputSize).
		Int("max_frames", cfg.MaxFrames).
		Int("default_delay_ms", cfg.DefaultDelayMS).
		Str("log_level", cfg.LogLevel).
		Msg("server starting")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		store.Close()
		os.Exit(1)
	}
	store.Close()

	log.Info().Msg("server stopped")
}
