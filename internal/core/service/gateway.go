package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
)

type gatewayState struct {
	creds  domain.Credentials
	client ports.BillingPort
}

// Gateway adapts storefront payment operations onto the billing service.
// Each instance carries its own credentials, so several gateways with
// different sites can live in one process.
type Gateway struct {
	factory      ports.BillingClientFactory
	amountPolicy domain.AmountPolicy
	logger       *slog.Logger
	state        atomic.Pointer[gatewayState]
}

func NewGateway(factory ports.BillingClientFactory, amountPolicy domain.AmountPolicy, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	if amountPolicy == "" {
		amountPolicy = domain.AmountPassThrough
	}
	return &Gateway{
		factory:      factory,
		amountPolicy: amountPolicy,
		logger:       logger,
	}
}

// Configure stores the credentials and builds a fresh billing client for
// them. A later call replaces the whole configuration. No network I/O.
func (g *Gateway) Configure(creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	client, err := g.factory(creds)
	if err != nil {
		return fmt.Errorf("failed to initialize billing client: %w", err)
	}

	g.state.Store(&gatewayState{creds: creds, client: client})
	g.logger.Info("gateway configured", "subdomain", creds.Subdomain)
	return nil
}

// Credentials returns the active credentials, if any.
func (g *Gateway) Credentials() (domain.Credentials, bool) {
	st := g.state.Load()
	if st == nil {
		return domain.Credentials{}, false
	}
	return st.creds, true
}

func (g *Gateway) AmountPolicy() domain.AmountPolicy {
	return g.amountPolicy
}

func (g *Gateway) client() (ports.BillingPort, error) {
	st := g.state.Load()
	if st == nil {
		return nil, domain.NewNotConfiguredError()
	}
	return st.client, nil
}

// Supports reports whether kind can be performed by this gateway.
func (g *Gateway) Supports(kind domain.OperationKind) bool {
	return kind.Supported()
}

// Capabilities maps every operation kind to whether it is supported.
func (g *Gateway) Capabilities() map[domain.OperationKind]bool {
	caps := make(map[domain.OperationKind]bool, len(domain.AllOperations))
	for _, kind := range domain.AllOperations {
		caps[kind] = g.Supports(kind)
	}
	return caps
}

// Execute dispatches op to the operation named by its kind.
func (g *Gateway) Execute(ctx context.Context, op domain.Operation) (*domain.GatewayResult, error) {
	switch op.Kind {
	case domain.OpCreateProfile:
		return g.CreateProfile(ctx, op.Payment)
	case domain.OpPurchase:
		return g.Purchase(ctx, op.Amount, op.Card, op.Options)
	case domain.OpVoid:
		return g.Void(ctx, op.TransactionID, op.Card, op.Options)
	case domain.OpCredit:
		return g.Credit(ctx, op.Amount, op.Card, op.TransactionID, op.Options)
	case domain.OpAuthorize:
		return g.Authorize(ctx, op.Amount, op.Card, op.Options)
	case domain.OpCapture:
		return g.Capture(ctx, op.Payment, op.Card, op.Options)
	default:
		return nil, fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}
