package service

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Credit_PartialRefund(t *testing.T) {
	mockBilling := &MockBillingPort{}
	gateway := newTestGateway(mockBilling)

	result, err := gateway.Credit(context.Background(), 50, newCard(strPtr("1")), testTransactionID, domain.Options{})

	require.NoError(t, err)
	assert.True(t, result.Success)

	assert.Equal(t, []string{testTransactionID}, mockBilling.FoundTransactions)
	require.Len(t, mockBilling.Refunds, 1)
	assert.Equal(t, testTransactionID, mockBilling.Refunds[0].UUID)
	require.NotNil(t, mockBilling.Refunds[0].AmountInCents)
	assert.Equal(t, 50.0, *mockBilling.Refunds[0].AmountInCents)
}

func TestGateway_Credit_RepeatedCreditsAccumulate(t *testing.T) {
	mockBilling := &MockBillingPort{}
	gateway := newTestGateway(mockBilling)

	for _, amount := range []float64{10, 15, 25} {
		result, err := gateway.Credit(context.Background(), amount, nil, testTransactionID, domain.Options{})
		require.NoError(t, err)
		assert.True(t, result.Success)
	}

	require.Len(t, mockBilling.Refunds, 3)
	assert.Equal(t, 15.0, *mockBilling.Refunds[1].AmountInCents)
}

func TestGateway_Credit_OverRefundRejected(t *testing.T) {
	mockBilling := &MockBillingPort{
		RefundTransactionFn: func(ctx context.Context, uuid string, amountInCents *float64) (*domain.Transaction, error) {
			return &domain.Transaction{
				Errors: domain.ValidationErrors{
					{Field: "amount_in_cents", Symbol: "too_large", Message: "cannot exceed the refundable amount"},
				},
			}, nil
		},
	}
	gateway := newTestGateway(mockBilling)

	result, err := gateway.Credit(context.Background(), 5000, nil, testTransactionID, domain.Options{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "amount_in_cents cannot exceed the refundable amount", result.Message)
}

func TestGateway_Credit_CentsPolicy(t *testing.T) {
	mockBilling := &MockBillingPort{}
	gateway := NewGateway(func(domain.Credentials) (ports.BillingPort, error) {
		return mockBilling, nil
	}, domain.AmountToCents, nil)
	require.NoError(t, gateway.Configure(domain.Credentials{Subdomain: "mydomain", APIKey: "key"}))

	_, err := gateway.Credit(context.Background(), 12.5, nil, testTransactionID, domain.Options{})

	require.NoError(t, err)
	require.Len(t, mockBilling.Refunds, 1)
	assert.Equal(t, 1250.0, *mockBilling.Refunds[0].AmountInCents)
}

func TestGateway_Credit_InvalidAmount(t *testing.T) {
	mockBilling := &MockBillingPort{}
	gateway := newTestGateway(mockBilling)

	_, err := gateway.Credit(context.Background(), -1, nil, testTransactionID, domain.Options{})

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
	assert.Zero(t, mockBilling.TotalCalls())
}

func TestGateway_Credit_TransactionNotFound(t *testing.T) {
	mockBilling := &MockBillingPort{
		FindTransactionFn: func(ctx context.Context, uuid string) (*domain.Transaction, error) {
			return nil, domain.NewTransactionNotFoundError(uuid)
		},
	}
	gateway := newTestGateway(mockBilling)

	_, err := gateway.Credit(context.Background(), 50, nil, "bogus", domain.Options{})

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound))
	assert.Zero(t, mockBilling.GetCalls("RefundTransaction"))
}
