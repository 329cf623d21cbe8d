package main

import (
	"fmt"

	"github.com/oakmount/siteadmin/internal/config"
	httphandler "github.com/oakmount/siteadmin/internal/handler/http"
	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/internal/server"
	"github.com/oakmount/siteadmin/internal/service"
	"github.com/oakmount/siteadmin/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("siteadmin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("local_dir", cfg.Storage.Local.Dir).
		Bool("remote_configured", cfg.Storage.GitHub.Configured()).
		Msg("received configs")

	storages := store.NewStorages(cfg.Storage, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
