package service

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/mapper"
)

// CreateProfile creates the billing account for the payment's card and
// records the account code on the card. A card that already has a profile
// id is left alone and no remote call is made.
//
// Callers must not run two CreateProfile calls for the same card at once.
func (g *Gateway) CreateProfile(ctx context.Context, payment *domain.Payment) (*domain.GatewayResult, error) {
	if payment == nil || payment.Source == nil {
		return nil, domain.NewMissingRequiredFieldError("payment.source")
	}

	card := payment.Source
	if card.HasProfile() {
		return domain.NewSuccessResult(card.ProfileID()), nil
	}

	req, err := mapper.AccountRequest(payment.Order, card)
	if err != nil {
		return nil, err
	}

	client, err := g.client()
	if err != nil {
		return nil, err
	}

	account, err := client.CreateAccount(ctx, req)
	if err != nil {
		g.logger.Error("account creation failed",
			"account_code", req.AccountCode,
			"error", err,
		)
		return nil, err
	}

	if account.Errors.HasErrors() {
		g.logger.Warn("account creation rejected",
			"account_code", req.AccountCode,
			"errors", account.Errors.Error(),
		)
		return domain.NewFailureResult(req.AccountCode, account.Errors), nil
	}

	accountCode := account.AccountCode
	if accountCode == "" {
		accountCode = req.AccountCode
	}
	card.GatewayCustomerProfileID = &accountCode

	g.logger.Info("account created", "account_code", accountCode)
	return domain.NewSuccessResult(accountCode), nil
}
