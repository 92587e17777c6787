package service

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// Purchase charges the account stored on card. The card must already carry
// a profile id; calling Purchase without one is a caller bug.
func (g *Gateway) Purchase(ctx context.Context, amount float64, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error) {
	if !card.HasProfile() {
		return nil, domain.NewMissingProfileError(domain.OpPurchase)
	}

	amountInCents, err := g.amountPolicy.InCents(amount)
	if err != nil {
		return nil, err
	}

	client, err := g.client()
	if err != nil {
		return nil, err
	}

	account, err := client.FindAccount(ctx, card.ProfileID())
	if err != nil {
		return nil, err
	}

	accountCode := account.AccountCode
	if accountCode == "" {
		accountCode = card.ProfileID()
	}

	txn, err := client.CreateTransaction(ctx, accountCode, domain.TransactionRequest{
		AmountInCents: amountInCents,
		Currency:      opts.CurrencyOrDefault(),
		Description:   opts.Description,
	})
	if err != nil {
		g.logger.Error("purchase failed",
			"account_code", accountCode,
			"error", err,
		)
		return nil, err
	}

	result := transactionResult(txn)
	g.logger.Info("purchase processed",
		"account_code", accountCode,
		"transaction_id", txn.UUID,
		"success", result.Success,
	)
	return result, nil
}
