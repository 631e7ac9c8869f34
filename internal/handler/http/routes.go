package http

import (
	"net/http"

	"github.com/MKhiriev/go-pubsub-chat/internal/app"
	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router for the subset of the IPFS HTTP RPC API the chat
// client uses.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// Flat patterns keep CheckHTTPMethod's exact-path lookup working.
	router.Post("/api/v0/pubsub/sub", h.subscribe)
	router.Post("/api/v0/pubsub/pub", h.publish)
	router.Post("/api/v0/pubsub/ls", h.listTopics)
	router.Post("/api/v0/version", h.getVersion)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteRPCError(w, app.MsgPageNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
