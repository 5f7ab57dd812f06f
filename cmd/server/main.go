package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/damiancupo2-tech/ventaspadel2.0/internal/config"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/infra"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/router"
	"github.com/damiancupo2-tech/ventaspadel2.0/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	nube := infra.NewCloudBackupClient(cfg.BackupURL, cfg.BackupToken)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := router.New(cfg, db, rdb, nube)

	// Worker pool for async jobs (cloud backups, closure emails). Handlers
	// are wired here at the composition root.
	emailWorker := worker.NewEmailWorker(deps.Cierres, deps.Mailer)
	worker.StartPool(ctx, rdb, cfg.WorkerPoolSize, worker.NewHandlers(deps.Backups, emailWorker))

	// Periodic cloud backups, if an endpoint is configured.
	var stopScheduler func()
	if cfg.BackupURL != "" {
		stopScheduler, err = worker.StartScheduler(ctx, deps.Backups, cfg.BackupIntervalMins)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start backup scheduler")
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      deps.Engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("ventaspadel backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	if stopScheduler != nil {
		stopScheduler()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
