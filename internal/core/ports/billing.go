package ports

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// BillingPort defines the behavior of the remote billing service.
//
// Lookups of unknown accounts or transactions fail with
// ACCOUNT_NOT_FOUND / TRANSACTION_NOT_FOUND domain errors. Rejected
// creations are not errors: the returned resource carries Errors.
type BillingPort interface {
	CreateAccount(ctx context.Context, req domain.AccountRequest) (*domain.Account, error)
	FindAccount(ctx context.Context, accountCode string) (*domain.Account, error)
	CreateTransaction(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error)
	FindTransaction(ctx context.Context, uuid string) (*domain.Transaction, error)
	// RefundTransaction refunds the whole transaction when amountInCents is nil.
	RefundTransaction(ctx context.Context, uuid string, amountInCents *float64) (*domain.Transaction, error)
}

// BillingClientFactory builds a client bound to one set of credentials.
type BillingClientFactory func(creds domain.Credentials) (BillingPort, error)
