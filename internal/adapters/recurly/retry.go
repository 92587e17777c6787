package recurly

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/config"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

// RetryClient retries retryable failures with exponential backoff and
// jitter. Every attempt of one call carries the same Idempotency-Key.
type RetryClient struct {
	inner     ports.BillingPort
	baseDelay time.Duration
	maxDelay  time.Duration
	attempts  uint
	metrics   *Metrics
	logger    *slog.Logger
}

func NewRetryClient(inner ports.BillingPort, cfg config.RetryConfig, metrics *Metrics, logger *slog.Logger) *RetryClient {
	if logger == nil {
		logger = slog.Default()
	}
	// The first call is not a retry.
	attempts := cfg.MaxRetries + 1
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	return &RetryClient{
		inner:     inner,
		baseDelay: baseDelay,
		maxDelay:  cfg.MaxDelay,
		attempts:  attempts,
		metrics:   metrics,
		logger:    logger,
	}
}

func (r *RetryClient) CreateAccount(ctx context.Context, req domain.AccountRequest) (*domain.Account, error) {
	return withRetry(r, ctx, opCreateAccount, func(ctx context.Context) (*domain.Account, error) {
		return r.inner.CreateAccount(ctx, req)
	})
}

func (r *RetryClient) FindAccount(ctx context.Context, accountCode string) (*domain.Account, error) {
	return withRetry(r, ctx, opFindAccount, func(ctx context.Context) (*domain.Account, error) {
		return r.inner.FindAccount(ctx, accountCode)
	})
}

func (r *RetryClient) CreateTransaction(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error) {
	return withRetry(r, ctx, opCreateTransaction, func(ctx context.Context) (*domain.Transaction, error) {
		return r.inner.CreateTransaction(ctx, accountCode, req)
	})
}

func (r *RetryClient) FindTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return withRetry(r, ctx, opFindTransaction, func(ctx context.Context) (*domain.Transaction, error) {
		return r.inner.FindTransaction(ctx, id)
	})
}

func (r *RetryClient) RefundTransaction(ctx context.Context, id string, amountInCents *float64) (*domain.Transaction, error) {
	return withRetry(r, ctx, opRefundTransaction, func(ctx context.Context) (*domain.Transaction, error) {
		return r.inner.RefundTransaction(ctx, id, amountInCents)
	})
}

func withRetry[T any](r *RetryClient, ctx context.Context, op string, call func(ctx context.Context) (*T, error)) (*T, error) {
	if _, ok := domain.IdempotencyKeyFrom(ctx); !ok {
		ctx = domain.WithIdempotencyKey(ctx, uuid.NewString())
	}

	return retry.DoWithData(
		func() (*T, error) {
			return call(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.baseDelay),
		retry.MaxDelay(r.maxDelay),
		retry.MaxJitter(r.baseDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			r.metrics.retried(op)
			r.logger.Warn("retrying billing call",
				"operation", op,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
}
