package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gentrackhq/gentrack/internal/config"
	"github.com/gentrackhq/gentrack/internal/crypto"
	handlerhttp "github.com/gentrackhq/gentrack/internal/handler/http"
	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/notify"
	"github.com/gentrackhq/gentrack/internal/ratelimit"
	"github.com/gentrackhq/gentrack/internal/server"
	"github.com/gentrackhq/gentrack/internal/service"
	"github.com/gentrackhq/gentrack/internal/store"
	"github.com/gentrackhq/gentrack/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gentrack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hasher, err := crypto.NewPasswordHasher()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	services := service.NewServices(storages, hasher, cfg.App, log)

	limiter := ratelimit.NewLimiter(cfg.App.RateLimit, cfg.App.RateWindow, time.Now, log.GetChildLogger())

	handler := handlerhttp.NewHandler(services, limiter, cfg.App.Production, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	pool := []workers.Worker{
		limiter,
		workers.NewSessionSweeper(storages.SessionRepository, cfg.Workers.SessionSweepInterval, logger.NewLogger("sweeper")),
	}
	if cfg.Notify.WebhookURL != "" {
		pool = append(pool, notify.NewReminderWorker(
			storages.GeneratorRepository,
			notify.NewWebhookSender(notify.WebhookConfig{
				URL:     cfg.Notify.WebhookURL,
				Timeout: cfg.Notify.RequestTimeout,
			}),
			cfg.Workers.ReminderInterval,
			logger.NewLogger("reminder"),
		))
	}

	background := workers.NewWorkers(pool...)
	background.Run()
	defer background.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
