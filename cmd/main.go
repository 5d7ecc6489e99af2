package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mergington-activities/api"
	"mergington-activities/config"
	"mergington-activities/health"
	"mergington-activities/metrics"
	"mergington-activities/registry"
	"mergington-activities/web"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "source"

func setLogger(level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level; using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	log.Info().Msgf("Starting mergington-activities version: %s", version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setLogger(cfg.LogLevel)
	log.Info().Interface("config", cfg.Redacted()).Msg("config loaded")

	// Seed the registry: built-in catalog unless a seed file is configured
	seed := registry.BuiltinSeed()
	if cfg.SeedFile != "" {
		log.Info().Str("seedFile", cfg.SeedFile).Msg("loading activity catalog from seed file")
		seed, err = registry.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("seedFile", cfg.SeedFile).Msg("failed to load seed file")
		}
	}
	reg := registry.New(seed)
	log.Info().Int("activities", reg.Len()).Msg("activity registry seeded")

	// Context and shutdown handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	metrics.Register(mux)
	health.Register(mux, reg)
	api.NewHandler(reg).RegisterRoutes(mux)
	mux.Handle("GET /static/", http.StripPrefix("/static/", web.Handler()))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr()).Msg("starting activities server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	// Block until shutdown
	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
