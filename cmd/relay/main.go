package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/handler"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/server"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("pubsub-chat-relay")
	cfg, err := config.GetRelayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(log)

	handlers, err := handler.NewHandlers(services, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, services, cfg.Server, log)
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
