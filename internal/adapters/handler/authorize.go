package handler

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// HandleAuthorize always answers 501: purchases settle immediately.
// @Summary      Authorize (not supported)
// @Tags         transactions
// @Produce      json
// @Failure      501  {object}  APIResponse
// @Router       /authorizations [post]
func (h *PaymentHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	_, err := h.gateway.Authorize(r.Context(), 0, nil, domain.Options{})
	respondWithError(w, err)
}
