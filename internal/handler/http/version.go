package http

import (
	"net/http"

	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
)

type versionResponse struct {
	Version string `json:"Version"`
	Commit  string `json:"Commit"`
	Date    string `json:"Date"`
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, versionResponse{
		Version: h.buildInfo.BuildVersion(),
		Commit:  h.buildInfo.BuildCommit(),
		Date:    h.buildInfo.BuildDate(),
	}, http.StatusOK)
}
