package handler

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// HandleCapture always answers 501: purchases settle immediately.
// @Summary      Capture (not supported)
// @Tags         transactions
// @Produce      json
// @Failure      501  {object}  APIResponse
// @Router       /captures [post]
func (h *PaymentHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	_, err := h.gateway.Capture(r.Context(), nil, nil, domain.Options{})
	respondWithError(w, err)
}
