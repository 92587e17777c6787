package service

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// Credit refunds part of a transaction. Amount follows the same unit
// policy as Purchase. Repeated credits accumulate until the billing
// service rejects an over-refund.
func (g *Gateway) Credit(ctx context.Context, amount float64, card *domain.CreditCard, transactionID string, opts domain.Options) (*domain.GatewayResult, error) {
	if transactionID == "" {
		return nil, domain.NewMissingRequiredFieldError("transaction_id")
	}

	amountInCents, err := g.amountPolicy.InCents(amount)
	if err != nil {
		return nil, err
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

	refund, err := client.RefundTransaction(ctx, transactionID, &amountInCents)
	if err != nil {
		g.logger.Error("credit failed", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	result := transactionResult(refund)
	g.logger.Info("transaction credited",
		"transaction_id", transactionID,
		"amount_in_cents", amountInCents,
		"success", result.Success,
	)
	return result, nil
}
