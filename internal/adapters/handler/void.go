package handler

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// HandleVoid refunds a transaction in full
// @Summary      Void
// @Tags         transactions
// @Produce      json
// @Param        id   path      string  true  "Billing transaction id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Failure      422  {object}  APIResponse  "Already voided or rejected"
// @Router       /transactions/{id}/void [post]
func (h *PaymentHandler) HandleVoid(w http.ResponseWriter, r *http.Request) {
	transactionID, err := transactionIDParam(r)
	if err != nil {
		respondWithValidationError(w, err)
		return
	}

	result, err := h.gateway.Void(withIdempotencyKey(r), transactionID, nil, domain.Options{})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithResult(w, http.StatusOK, result)
}
