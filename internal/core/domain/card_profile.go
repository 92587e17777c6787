package domain

import "time"

// CardProfile is the stored link between a storefront card and the billing
// account created for it. It holds no card data.
type CardProfile struct {
	CardID    string
	UserID    string
	ProfileID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Apply copies the stored profile id onto a card supplied by the storefront.
func (p *CardProfile) Apply(card *CreditCard) {
	card.ID = p.CardID
	if card.GatewayCustomerProfileID == nil {
		card.GatewayCustomerProfileID = p.ProfileID
	}
}
