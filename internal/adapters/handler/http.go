package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/go-playground/validator"
)

type GatewayService interface {
	Purchase(ctx context.Context, amount float64, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error)
	Void(ctx context.Context, transactionID string, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error)
	Credit(ctx context.Context, amount float64, card *domain.CreditCard, transactionID string, opts domain.Options) (*domain.GatewayResult, error)
	Authorize(ctx context.Context, amount float64, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error)
	Capture(ctx context.Context, payment *domain.Payment, card *domain.CreditCard, opts domain.Options) (*domain.GatewayResult, error)
	Capabilities() map[domain.OperationKind]bool
}

type VaultService interface {
	EnsureProfile(ctx context.Context, payment *domain.Payment) (*domain.GatewayResult, error)
	LoadCard(ctx context.Context, card *domain.CreditCard) error
}

type PaymentHandler struct {
	gateway  GatewayService
	vault    VaultService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewPaymentHandler(gateway GatewayService, vault VaultService, logger *slog.Logger) *PaymentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentHandler{
		gateway:  gateway,
		vault:    vault,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /profiles", h.HandleCreateProfile)
	mux.HandleFunc("POST /purchases", h.HandlePurchase)
	mux.HandleFunc("POST /transactions/{id}/void", h.HandleVoid)
	mux.HandleFunc("POST /transactions/{id}/credit", h.HandleCredit)
	mux.HandleFunc("POST /authorizations", h.HandleAuthorize)
	mux.HandleFunc("POST /captures", h.HandleCapture)
	mux.HandleFunc("GET /capabilities", h.HandleCapabilities)
}

// withIdempotencyKey forwards the caller's Idempotency-Key to billing writes.
func withIdempotencyKey(r *http.Request) context.Context {
	if key := r.Header.Get("Idempotency-Key"); key != "" {
		return domain.WithIdempotencyKey(r.Context(), key)
	}
	return r.Context()
}
