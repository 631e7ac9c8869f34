package service

import (
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
)

// Services groups the relay-side services.
type Services struct {
	RelayHub RelayHub
}

func NewServices(logger *logger.Logger) *Services {
	return &Services{
		RelayHub: NewRelayHub(DefaultSubscriberBuffer, logger),
	}
}
