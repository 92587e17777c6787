package service

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// Authorize is not offered by the billing service: purchases settle at once
// and there is no separate hold. It fails the same way for every input.
func (g *Gateway) Authorize(ctx context.Context, amount float64, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error) {
	return nil, domain.NewUnsupportedOperationError(domain.OpAuthorize)
}
