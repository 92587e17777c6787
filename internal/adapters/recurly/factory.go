package recurly

import (
	"log/slog"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/config"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
)

// Options carries the transport settings shared by every client the
// factory builds.
type Options struct {
	Recurly config.RecurlyConfig
	Retry   config.RetryConfig
	Breaker config.BreakerConfig
	Metrics *Metrics
	Logger  *slog.Logger
}

// NewClientFactory returns a factory that stacks metrics, retry and the
// circuit breaker around an HTTP client for the given credentials.
func NewClientFactory(opts Options) ports.BillingClientFactory {
	return func(creds domain.Credentials) (ports.BillingPort, error) {
		if err := creds.Validate(); err != nil {
			return nil, err
		}

		var client ports.BillingPort = NewHTTPClient(creds, opts.Recurly)
		client = NewBreakerClient(creds.Subdomain, client, opts.Breaker, opts.Metrics, opts.Logger)
		client = NewRetryClient(client, opts.Retry, opts.Metrics, opts.Logger)
		return NewMetricsClient(client, opts.Metrics), nil
	}
}
