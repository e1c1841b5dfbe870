package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-engineer-hub/internal/adapter"
	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/handler"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/server"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-engineer-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("version", cfg.App.Version).
		Str("upload_dir", cfg.Storage.Files.UploadDir).
		Dur("upload_ttl", cfg.Storage.Files.UploadTTL).
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	media, err := adapter.NewMediaUploader(cfg.Adapter.Media, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating media uploader")
	}

	services, err := service.NewServices(storages, media, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	go workers.NewWorkers(workers.NewUploadSweeper(cfg.Storage.Files, log)).Run(ctx)

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
