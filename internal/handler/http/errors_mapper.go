package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pubsub-chat/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyTopic:      http.StatusBadRequest,
	service.ErrPayloadTooLarge: http.StatusRequestEntityTooLarge,
	service.ErrHubClosed:       http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
