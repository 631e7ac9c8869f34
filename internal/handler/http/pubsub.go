package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-pubsub-chat/internal/app"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
)

const (
	argParam     = "arg"
	dataFormFile = "data"

	// multipart framing allowance on top of the payload limit
	formOverhead = 64 << 10
)

type topicsResponse struct {
	Strings []string `json:"Strings"`
}

// subscribe streams every message published to the topic as one JSON object
// per line until the client disconnects.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	topic, ok := topicArg(w, r)
	if !ok {
		return
	}

	messages, err := h.services.RelayHub.Subscribe(r.Context(), topic)
	if err != nil {
		log.Err(err).Str("topic", topic).Msg("subscribe failed")
		utils.WriteRPCError(w, err.Error(), statusFromError(err))
		return
	}

	stream, err := utils.NewJSONLineWriter(w)
	if err != nil {
		log.Err(err).Msg(app.MsgStreamingUnsupported)
		utils.WriteRPCError(w, app.MsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	log.Info().Str("topic", topic).Msg("subscription opened")
	for msg := range messages {
		if err = stream.Write(msg); err != nil {
			log.Debug().Err(err).Str("topic", topic).Msg("subscriber went away")
			return
		}
	}
	log.Info().Str("topic", topic).Msg("subscription closed")
}

// publish reads the "data" file part and hands it to the hub.
func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	topic, ok := topicArg(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxRelayPayload+formOverhead)
	file, _, err := r.FormFile(dataFormFile)
	if err != nil {
		log.Debug().Err(err).Msg("publish without data")
		utils.WriteRPCError(w, app.MsgDataRequired, http.StatusBadRequest)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, service.MaxRelayPayload+1))
	if err != nil {
		utils.WriteRPCError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.services.RelayHub.Publish(r.Context(), topic, payload); err != nil {
		log.Err(err).Str("topic", topic).Msg("publish failed")
		utils.WriteRPCError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics := h.services.RelayHub.Topics()

	encoded := make([]string, 0, len(topics))
	for _, topic := range topics {
		encoded = append(encoded, utils.EncodeMultibase([]byte(topic)))
	}

	_, _ = utils.WriteJSON(w, topicsResponse{Strings: encoded}, http.StatusOK)
}

// topicArg extracts the topic from the "arg" query parameter. It writes the
// error response itself and reports false when the argument is missing.
func topicArg(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.URL.Query().Get(argParam)
	if raw == "" {
		utils.WriteRPCError(w, app.MsgTopicRequired, http.StatusBadRequest)
		return "", false
	}

	return utils.DecodeTopic(raw), true
}
