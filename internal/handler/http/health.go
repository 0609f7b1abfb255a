package http

import (
	"net/http"

	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

// health is a liveness probe: it reports that the process is up and serving.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
