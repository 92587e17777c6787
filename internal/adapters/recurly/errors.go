package recurly

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/sony/gobreaker/v2"
)

// APIError is a non-2xx answer from the billing service that is neither a
// missing resource nor a validation rejection.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recurly error: %s (status: %d)", e.Message, e.StatusCode)
}

// IsRetryable is true for server-side failures and throttling.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type errorResponse struct {
	Error struct {
		Symbol      string `json:"symbol"`
		Description string `json:"description"`
	} `json:"error"`
}

// isRetryable decides whether a failed call may be sent again.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}

	var retryable domain.Retryable
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}

	// Transport failures (timeouts, resets) are wrapped as upstream errors
	// without a status and are worth another attempt.
	return domain.IsErrorCode(err, domain.ErrCodeUpstream)
}
