package http

import (
	"net/http"

	"github.com/MKhiriev/titanic-identity/internal/utils"
)

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Info(r.Context()), http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AuthService.Stats(r.Context()), http.StatusOK)
}
