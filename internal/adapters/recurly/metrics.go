package recurly

import (
	"context"
	"time"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
)

const (
	opCreateAccount     = "create_account"
	opFindAccount       = "find_account"
	opCreateTransaction = "create_transaction"
	opFindTransaction   = "find_transaction"
	opRefundTransaction = "refund_transaction"
)

// Outcome labels
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeNotFound = "not_found"
	outcomeUpstream = "upstream_error"
	outcomeError    = "error"
)

// Metrics holds the billing client metrics. A nil *Metrics records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RetriesTotal    *prometheus.CounterVec
	BreakerState    *prometheus.GaugeVec
}

// NewMetrics creates and registers the metrics against reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "billing_requests_total",
				Help:      "Total number of billing service calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "billing_request_duration_seconds",
				Help:      "Billing service call duration in seconds, retries included",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"operation"},
		),
		RetriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "billing_retries_total",
				Help:      "Total number of retried billing service calls",
			},
			[]string{"operation"},
		),
		BreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "billing_circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"breaker"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.RetriesTotal, m.BreakerState)
	return m
}

func (m *Metrics) observe(op string, start time.Time, outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(op, outcome).Inc()
	m.RequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) retried(op string) {
	if m == nil {
		return
	}
	m.RetriesTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) breakerState(name string, state gobreaker.State) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(name).Set(float64(state))
}

func outcomeOf(err error, errs domain.ValidationErrors) string {
	switch {
	case err == nil && errs.HasErrors():
		return outcomeRejected
	case err == nil:
		return outcomeSuccess
	case domain.IsErrorCode(err, domain.ErrCodeAccountNotFound),
		domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound):
		return outcomeNotFound
	case domain.IsErrorCode(err, domain.ErrCodeUpstream):
		return outcomeUpstream
	default:
		return outcomeError
	}
}

// MetricsClient records one observation per logical billing call.
type MetricsClient struct {
	inner   ports.BillingPort
	metrics *Metrics
}

func NewMetricsClient(inner ports.BillingPort, metrics *Metrics) *MetricsClient {
	return &MetricsClient{inner: inner, metrics: metrics}
}

func (m *MetricsClient) CreateAccount(ctx context.Context, req domain.AccountRequest) (*domain.Account, error) {
	start := time.Now()
	account, err := m.inner.CreateAccount(ctx, req)
	m.metrics.observe(opCreateAccount, start, outcomeOf(err, accountErrors(account)))
	return account, err
}

func (m *MetricsClient) FindAccount(ctx context.Context, accountCode string) (*domain.Account, error) {
	start := time.Now()
	account, err := m.inner.FindAccount(ctx, accountCode)
	m.metrics.observe(opFindAccount, start, outcomeOf(err, accountErrors(account)))
	return account, err
}

func (m *MetricsClient) CreateTransaction(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error) {
	start := time.Now()
	txn, err := m.inner.CreateTransaction(ctx, accountCode, req)
	m.metrics.observe(opCreateTransaction, start, outcomeOf(err, transactionErrors(txn)))
	return txn, err
}

func (m *MetricsClient) FindTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	start := time.Now()
	txn, err := m.inner.FindTransaction(ctx, id)
	m.metrics.observe(opFindTransaction, start, outcomeOf(err, transactionErrors(txn)))
	return txn, err
}

func (m *MetricsClient) RefundTransaction(ctx context.Context, id string, amountInCents *float64) (*domain.Transaction, error) {
	start := time.Now()
	txn, err := m.inner.RefundTransaction(ctx, id, amountInCents)
	m.metrics.observe(opRefundTransaction, start, outcomeOf(err, transactionErrors(txn)))
	return txn, err
}

func accountErrors(a *domain.Account) domain.ValidationErrors {
	if a == nil {
		return nil
	}
	return a.Errors
}

func transactionErrors(t *domain.Transaction) domain.ValidationErrors {
	if t == nil {
		return nil
	}
	return t.Errors
}
