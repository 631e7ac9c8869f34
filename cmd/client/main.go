package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pubsub-chat/internal/adapter"
	"github.com/MKhiriev/go-pubsub-chat/internal/client"
	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
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

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the terminal UI, so the client logs to a file
	log := logger.NewClientLogger("pubsub-chat-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	factory := adapter.NewIPFSFactory(cfg.Adapter, log)

	app, err := client.NewApp(cfg, factory, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
