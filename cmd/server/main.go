package main

import (
	"context"
	"fmt"

	"github.com/nmaksimov/userdir/internal/config"
	handlerhttp "github.com/nmaksimov/userdir/internal/handler/http"
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/server"
	"github.com/nmaksimov/userdir/internal/service"
	"github.com/nmaksimov/userdir/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("userdir-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(&storages, cfg, log)

	if err = services.Directory.EnsureBootstrapAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding bootstrap administrator")
	}

	handler := handlerhttp.NewHandler(services, log)

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
