package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

type CardPayload struct {
	ID                       string  `json:"id" validate:"required"`
	Number                   string  `json:"number" validate:"required"`
	VerificationValue        string  `json:"verification_value"`
	Month                    string  `json:"month"`
	Year                     string  `json:"year"`
	GatewayCustomerProfileID *string `json:"gateway_customer_profile_id,omitempty"`
}

type AddressPayload struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
	State     string `json:"state"`
	Country   string `json:"country"`
}

type OrderPayload struct {
	Email       string         `json:"email" validate:"required,email"`
	UserID      string         `json:"user_id" validate:"required"`
	BillAddress AddressPayload `json:"bill_address"`
}

type ProfileRequest struct {
	Card  CardPayload  `json:"card"`
	Order OrderPayload `json:"order"`
}

func (r ProfileRequest) toPayment() *domain.Payment {
	addr := &domain.Address{
		FirstName: r.Order.BillAddress.FirstName,
		LastName:  r.Order.BillAddress.LastName,
		Address1:  r.Order.BillAddress.Address1,
		Address2:  r.Order.BillAddress.Address2,
		City:      r.Order.BillAddress.City,
		Zipcode:   r.Order.BillAddress.Zipcode,
	}
	if r.Order.BillAddress.State != "" {
		addr.State = &domain.State{Name: r.Order.BillAddress.State}
	}
	if r.Order.BillAddress.Country != "" {
		addr.Country = &domain.Country{Name: r.Order.BillAddress.Country}
	}

	return &domain.Payment{
		Source: &domain.CreditCard{
			ID:                       r.Card.ID,
			Number:                   r.Card.Number,
			VerificationValue:        r.Card.VerificationValue,
			Month:                    r.Card.Month,
			Year:                     r.Card.Year,
			GatewayCustomerProfileID: r.Card.GatewayCustomerProfileID,
		},
		Order: &domain.Order{
			Email:       r.Order.Email,
			BillAddress: addr,
			User:        &domain.User{ID: r.Order.UserID},
		},
	}
}

// HandleCreateProfile stores the card's bill address and card data with the
// billing service, once per card.
// @Summary      Create a billing profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request  body      ProfileRequest  true  "Card and order"
// @Success      201      {object}  APIResponse
// @Failure      400      {object}  APIResponse
// @Failure      409      {object}  APIResponse
// @Failure      422      {object}  APIResponse
// @Router       /profiles [post]
func (h *PaymentHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	result, err := h.vault.EnsureProfile(withIdempotencyKey(r), req.toPayment())
	if err != nil {
		h.logger.Error("create profile failed", "card_id", req.Card.ID, "error", err)
		respondWithError(w, err)
		return
	}

	respondWithResult(w, http.StatusCreated, result)
}
