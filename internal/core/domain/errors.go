package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a structural gateway error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Retryable interface for errors that can be retried
type Retryable interface {
	IsRetryable() bool
}

const (
	ErrCodeNotConfigured        = "NOT_CONFIGURED"
	ErrCodeUnsupportedOperation = "UNSUPPORTED_OPERATION"
	ErrCodeMissingProfile       = "MISSING_PROFILE"
	ErrCodeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	ErrCodeCardNotFound         = "CARD_NOT_FOUND"
	ErrCodeCardOwnerMismatch    = "CARD_OWNER_MISMATCH"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeUpstream             = "UPSTREAM_ERROR"
)

func NewNotConfiguredError() *DomainError {
	return &DomainError{
		Code:    ErrCodeNotConfigured,
		Message: "gateway is not configured: call Configure with subdomain and api key first",
	}
}

func NewUnsupportedOperationError(kind OperationKind) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedOperation,
		Message: fmt.Sprintf("%s is not supported: charges are settled immediately on purchase", kind),
	}
}

func NewMissingProfileError(kind OperationKind) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingProfile,
		Message: fmt.Sprintf("%s requires a card with a gateway customer profile id", kind),
	}
}

func NewAccountNotFoundError(accountCode string) *DomainError {
	return &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("account %s not found", accountCode),
	}
}

func NewTransactionNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionNotFound,
		Message: fmt.Sprintf("transaction %s not found", id),
	}
}

func NewCardNotFoundError(cardID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCardNotFound,
		Message: fmt.Sprintf("card %s not found", cardID),
	}
}

func NewCardOwnerMismatchError(cardID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCardOwnerMismatch,
		Message: fmt.Sprintf("card %s belongs to another user", cardID),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidAmountError(amount float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %v", amount),
	}
}

func NewUpstreamError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeUpstream,
		Message: "billing service request failed",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
