package http

import (
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	traceIDs  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
