package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

type CreditRequest struct {
	Amount   float64 `json:"amount" validate:"gte=0" example:"50"`
	Currency string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// HandleCredit refunds part of a transaction
// @Summary      Credit
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Billing transaction id"
// @Param        request  body      CreditRequest  true  "Refund amount"
// @Success      200      {object}  APIResponse
// @Failure      404      {object}  APIResponse
// @Failure      422      {object}  APIResponse
// @Router       /transactions/{id}/credit [post]
func (h *PaymentHandler) HandleCredit(w http.ResponseWriter, r *http.Request) {
	transactionID, err := transactionIDParam(r)
	if err != nil {
		respondWithValidationError(w, err)
		return
	}

	var req CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	result, err := h.gateway.Credit(withIdempotencyKey(r), req.Amount, nil, transactionID, domain.Options{
		Currency: req.Currency,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithResult(w, http.StatusOK, result)
}
