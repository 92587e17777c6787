package mapper_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tomSmithOrder() *domain.Order {
	return &domain.Order{
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
	}
}

func testCard() *domain.CreditCard {
	return &domain.CreditCard{
		Number:            "4111-1111-1111-1111",
		VerificationValue: "123",
		Month:             "11",
		Year:              "2015",
	}
}

func TestAccountRequest_MapsBillAddressAndCard(t *testing.T) {
	req, err := mapper.AccountRequest(tomSmithOrder(), testCard())
	require.NoError(t, err)

	expected := domain.AccountRequest{
		AccountCode: "1",
		Email:       "smith@test.com",
		FirstName:   "Tom",
		LastName:    "Smith",
		Address: domain.AddressInfo{
			Address1: "123 Happy Road",
			Address2: "Apt 303",
			City:     "Suzarac",
			Zip:      "95671",
			Country:  "United States",
			State:    "Oregon",
		},
		BillingInfo: domain.BillingInfo{
			FirstName:         "Tom",
			LastName:          "Smith",
			Address1:          "123 Happy Road",
			Address2:          "Apt 303",
			City:              "Suzarac",
			Zip:               "95671",
			Number:            "4111-1111-1111-1111",
			Month:             "11",
			Year:              "2015",
			VerificationValue: "123",
			Country:           "United States",
			State:             "Oregon",
		},
	}
	assert.Equal(t, expected, req)
}

func TestAccountRequest_AddressBlocksAgree(t *testing.T) {
	req, err := mapper.AccountRequest(tomSmithOrder(), testCard())
	require.NoError(t, err)

	assert.Equal(t, req.Address.Address1, req.BillingInfo.Address1)
	assert.Equal(t, req.Address.Address2, req.BillingInfo.Address2)
	assert.Equal(t, req.Address.City, req.BillingInfo.City)
	assert.Equal(t, req.Address.Zip, req.BillingInfo.Zip)
	assert.Equal(t, req.Address.Country, req.BillingInfo.Country)
	assert.Equal(t, req.Address.State, req.BillingInfo.State)
	assert.Equal(t, req.FirstName, req.BillingInfo.FirstName)
	assert.Equal(t, req.LastName, req.BillingInfo.LastName)
}

func TestAccountRequest_MissingStateAndCountry(t *testing.T) {
	order := tomSmithOrder()
	order.BillAddress.State = nil
	order.BillAddress.Country = nil

	req, err := mapper.AccountRequest(order, testCard())
	require.NoError(t, err)

	assert.Empty(t, req.Address.State)
	assert.Empty(t, req.Address.Country)
	assert.Empty(t, req.BillingInfo.State)
}

func TestAccountRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		order *domain.Order
		card  *domain.CreditCard
	}{
		{name: "nil order", order: nil, card: testCard()},
		{name: "nil user", order: &domain.Order{BillAddress: tomSmithOrder().BillAddress}, card: testCard()},
		{name: "empty user id", order: &domain.Order{User: &domain.User{}, BillAddress: tomSmithOrder().BillAddress}, card: testCard()},
		{name: "nil bill address", order: &domain.Order{User: &domain.User{ID: "1"}}, card: testCard()},
		{name: "nil card", order: tomSmithOrder(), card: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapper.AccountRequest(tt.order, tt.card)
			require.Error(t, err)
			assert.True(t, domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField))
		})
	}
}
