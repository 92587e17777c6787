package handler

import "net/http"

// HandleCapabilities lists every operation kind and whether it is supported
func (h *PaymentHandler) HandleCapabilities(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.gateway.Capabilities())
}
