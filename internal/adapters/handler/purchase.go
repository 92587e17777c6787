package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

type PurchaseRequest struct {
	CardID      string  `json:"card_id" validate:"required" example:"card-1"`
	Amount      float64 `json:"amount" validate:"gte=0" example:"19.99"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3" example:"USD"`
	Description string  `json:"description,omitempty"`
}

// HandlePurchase charges the billing account stored for a card
// @Summary      Purchase
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Forwarded to the billing service"
// @Param        request          body      PurchaseRequest  true   "Charge details"
// @Success      201              {object}  APIResponse
// @Failure      404              {object}  APIResponse  "Unknown card or account"
// @Failure      412              {object}  APIResponse  "Card has no billing profile"
// @Failure      422              {object}  APIResponse  "Declined"
// @Router       /purchases [post]
func (h *PaymentHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	card := &domain.CreditCard{ID: req.CardID}
	if err := h.vault.LoadCard(r.Context(), card); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.gateway.Purchase(withIdempotencyKey(r), req.Amount, card, domain.Options{
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithResult(w, http.StatusCreated, result)
}
