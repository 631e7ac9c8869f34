package handler

import (
	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/handler/http"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, buildInfo, logger),
	}, nil
}
