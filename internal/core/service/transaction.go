package service

import (
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// transactionResult turns a billing service transaction into a gateway result.
func transactionResult(txn *domain.Transaction) *domain.GatewayResult {
	if txn.Errors.HasErrors() {
		return domain.NewFailureResult(txn.UUID, txn.Errors)
	}

	switch txn.Status {
	case domain.TransactionStatusDeclined, domain.TransactionStatusFailed:
		return domain.NewFailureResult(txn.UUID, domain.ValidationErrors{
			{Symbol: txn.Status, Message: "transaction " + txn.Status},
		})
	}
	return domain.NewSuccessResult(txn.UUID)
}

func alreadyVoidedResult(id string) *domain.GatewayResult {
	return domain.NewFailureResult(id, domain.ValidationErrors{
		{Symbol: "already_voided", Message: "transaction has already been voided"},
	})
}
