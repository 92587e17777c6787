package service

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// Capture is not offered by the billing service. It fails the same way for
// every input.
func (g *Gateway) Capture(ctx context.Context, payment *domain.Payment, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error) {
	return nil, domain.NewUnsupportedOperationError(domain.OpCapture)
}
