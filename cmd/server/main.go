package main

import (
	"context"
	"fmt"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/config"
	handlerHTTP "github.com/AchrafELGhazi/WareFlow-sub000/internal/handler/http"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/server"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wareflow-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Any("storage", cfg.Storage).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err := migrations.Migrate(storages.DB.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(storages, cfg, log)
	handler := handlerHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
