package main

import (
	"fmt"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/config"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	handler "github.com/Infradevandops/NAMASKAH-sub003/internal/handler/http"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("namaskah-devserver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	hub := devserver.NewHub(log)
	backend := devserver.NewBackend(hub, log)
	defer backend.Close()

	handlers := handler.NewHandler(backend, hub, cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init server error")
	}

	log.Info().
		Str("address", cfg.HTTPAddress).
		Str("email", devserver.DemoEmail).
		Str("password", devserver.DemoPassword).
		Msg("devserver ready, demo account credentials above")

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
