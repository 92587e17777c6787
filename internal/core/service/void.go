package service

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// Void refunds the whole of a transaction. The card is accepted for
// symmetry with the other operations and is not used.
func (g *Gateway) Void(ctx context.Context, transactionID string, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error) {
	if transactionID == "" {
		return nil, domain.NewMissingRequiredFieldError("transaction_id")
	}

	client, err := g.client()
	if err != nil {
		return nil, err
	}

	txn, err := client.FindTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsVoided() {
		return alreadyVoidedResult(transactionID), nil
	}

	refund, err := client.RefundTransaction(ctx, transactionID, nil)
	if err != nil {
		g.logger.Error("void failed", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	result := transactionResult(refund)
	g.logger.Info("transaction voided",
		"transaction_id", transactionID,
		"success", result.Success,
	)
	return result, nil
}
