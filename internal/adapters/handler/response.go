package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

const (
	errCodeValidation = "VALIDATION_ERROR"
	errCodeRejected   = "REJECTED"
	errCodeInternal   = "INTERNAL_ERROR"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

// respondWithResult writes a gateway result. A rejected result is a 422
// that still carries the result so callers see the field errors.
func respondWithResult(w http.ResponseWriter, status int, result *domain.GatewayResult) {
	if result.Success {
		respondWithJSON(w, status, result)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Data:    result,
		Error: &APIError{
			Code:    errCodeRejected,
			Message: result.Message,
		},
	})
}

func respondWithValidationError(w http.ResponseWriter, err error) {
	respondWithError(w, &domain.DomainError{
		Code:    errCodeValidation,
		Message: err.Error(),
	})
}

func respondWithError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	code := errCodeInternal
	message := err.Error()
	status := http.StatusInternalServerError

	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeInvalidAmount, domain.ErrCodeMissingRequiredField, errCodeValidation:
			status = http.StatusBadRequest
		case domain.ErrCodeAccountNotFound, domain.ErrCodeTransactionNotFound, domain.ErrCodeCardNotFound:
			status = http.StatusNotFound
		case domain.ErrCodeCardOwnerMismatch:
			status = http.StatusConflict
		case domain.ErrCodeUnsupportedOperation:
			status = http.StatusNotImplemented
		case domain.ErrCodeMissingProfile:
			status = http.StatusPreconditionFailed
		case domain.ErrCodeNotConfigured:
			status = http.StatusServiceUnavailable
		case domain.ErrCodeUpstream:
			status = http.StatusBadGateway
		default:
			status = http.StatusBadRequest
		}
	}

	respondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}
