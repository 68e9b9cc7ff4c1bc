package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lexsight/internal/ai"
	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/extract"
	"github.com/MKhiriev/lexsight/internal/handler"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/server"
	"github.com/MKhiriev/lexsight/internal/service"
	"github.com/MKhiriev/lexsight/internal/store"
	"github.com/MKhiriev/lexsight/internal/workers"
	"github.com/MKhiriev/lexsight/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("lexsight-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Bool("ai_enabled", cfg.AI.Enabled()).
		Strs("ocr_languages", cfg.OCR.Languages).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	backend, err := ai.NewBackend(ctx, cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating AI backend")
	}

	dispatcher := extract.NewDispatcher(extract.NewDefaultStrategies(cfg.OCR), cfg.OCR)

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, dispatcher, backend, buildInfo, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewSessionCleanupWorker(services.AuthService, cfg.App.SessionCleanupInterval, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log, db, backend)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
