// Package mapper translates storefront orders and cards into billing
// service payloads. It has no side effects.
package mapper

import (
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// AccountRequest builds the account creation payload for an order's user.
// Names come from the bill address, not from the user record.
func AccountRequest(order *domain.Order, card *domain.CreditCard) (domain.AccountRequest, error) {
	if order == nil {
		return domain.AccountRequest{}, domain.NewMissingRequiredFieldError("order")
	}
	if order.User == nil || order.User.ID == "" {
		return domain.AccountRequest{}, domain.NewMissingRequiredFieldError("order.user.id")
	}
	if order.BillAddress == nil {
		return domain.AccountRequest{}, domain.NewMissingRequiredFieldError("order.bill_address")
	}
	if card == nil {
		return domain.AccountRequest{}, domain.NewMissingRequiredFieldError("card")
	}

	addr := order.BillAddress
	return domain.AccountRequest{
		AccountCode: order.User.ID,
		Email:       order.Email,
		FirstName:   addr.FirstName,
		LastName:    addr.LastName,
		Address:     AddressInfo(addr),
		BillingInfo: BillingInfo(addr, card),
	}, nil
}

// AddressInfo maps a bill address onto the account address block.
func AddressInfo(addr *domain.Address) domain.AddressInfo {
	return domain.AddressInfo{
		Address1: addr.Address1,
		Address2: addr.Address2,
		City:     addr.City,
		Zip:      addr.Zipcode,
		Country:  addr.CountryName(),
		State:    addr.StateName(),
	}
}

// BillingInfo maps a bill address and card onto the billing info block.
// Card fields are copied verbatim.
func BillingInfo(addr *domain.Address, card *domain.CreditCard) domain.BillingInfo {
	return domain.BillingInfo{
		FirstName:         addr.FirstName,
		LastName:          addr.LastName,
		Address1:          addr.Address1,
		Address2:          addr.Address2,
		City:              addr.City,
		Zip:               addr.Zipcode,
		Number:            card.Number,
		Month:             card.Month,
		Year:              card.Year,
		VerificationValue: card.VerificationValue,
		Country:           addr.CountryName(),
		State:             addr.StateName(),
	}
}
