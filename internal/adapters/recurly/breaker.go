package recurly

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/config"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
	"github.com/sony/gobreaker/v2"
)

// BreakerClient stops calling the billing service while it keeps failing.
// Only retryable failures count against it; not-found answers and
// validation rejections are normal outcomes.
type BreakerClient struct {
	inner ports.BillingPort
	cb    *gobreaker.CircuitBreaker[any]
}

func NewBreakerClient(name string, inner ports.BillingPort, cfg config.BreakerConfig, metrics *Metrics, logger *slog.Logger) *BreakerClient {
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			return !isRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.breakerState(name, to)
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	metrics.breakerState(name, cb.State())

	return &BreakerClient{inner: inner, cb: cb}
}

// State reports the current breaker state.
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerClient) CreateAccount(ctx context.Context, req domain.AccountRequest) (*domain.Account, error) {
	return guarded(b, func() (*domain.Account, error) {
		return b.inner.CreateAccount(ctx, req)
	})
}

func (b *BreakerClient) FindAccount(ctx context.Context, accountCode string) (*domain.Account, error) {
	return guarded(b, func() (*domain.Account, error) {
		return b.inner.FindAccount(ctx, accountCode)
	})
}

func (b *BreakerClient) CreateTransaction(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error) {
	return guarded(b, func() (*domain.Transaction, error) {
		return b.inner.CreateTransaction(ctx, accountCode, req)
	})
}

func (b *BreakerClient) FindTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return guarded(b, func() (*domain.Transaction, error) {
		return b.inner.FindTransaction(ctx, id)
	})
}

func (b *BreakerClient) RefundTransaction(ctx context.Context, id string, amountInCents *float64) (*domain.Transaction, error) {
	return guarded(b, func() (*domain.Transaction, error) {
		return b.inner.RefundTransaction(ctx, id, amountInCents)
	})
}

func guarded[T any](b *BreakerClient, call func() (*T, error)) (*T, error) {
	res, err := b.cb.Execute(func() (any, error) {
		v, err := call()
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, domain.NewUpstreamError(err)
		}
		return nil, err
	}
	return res.(*T), nil
}
