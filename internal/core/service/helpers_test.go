package service

import (
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
)

// newTestGateway returns a configured pass-through gateway backed by billing.
func newTestGateway(billing ports.BillingPort) *Gateway {
	g := NewGateway(func(domain.Credentials) (ports.BillingPort, error) {
		return billing, nil
	}, domain.AmountPassThrough, nil)
	_ = g.Configure(domain.Credentials{Subdomain: "mydomain", APIKey: "xjkejid32djio"})
	return g
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func tomSmithPayment(card *domain.CreditCard) *domain.Payment {
	return &domain.Payment{
		Source: card,
		Order: &domain.Order{
			Email: "smith@test.com",
			BillAddress: &domain.Address{
				FirstName: "Tom",
				LastName:  "Smith",
				Address1:  "123 Happy Road",
				Address2:  "Apt 303",
				City:      "Suzarac",
				Zipcode:   "95671",
				State:     &domain.State{Name: "Oregon"},
				Country:   &domain.Country{Name: "United States"},
			},
			User: &domain.User{ID: "1"},
		},
	}
}

func newCard(profileID *string) *domain.CreditCard {
	return &domain.CreditCard{
		ID:                       "card-1",
		Number:                   "4111-1111-1111-1111",
		VerificationValue:        "123",
		Month:                    "11",
		Year:                     "2015",
		GatewayCustomerProfileID: profileID,
	}
}

const testTransactionID = "a13acd8fe4294916b79aec87b7ea441f"
