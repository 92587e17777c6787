package domain

import (
	"strings"
	"time"
)

// AddressInfo is the account address block sent to the billing service.
type AddressInfo struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	State    string `json:"state"`
}

// BillingInfo is the card and bill address block nested in account creation.
type BillingInfo struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2"`
	City              string `json:"city"`
	Zip               string `json:"zip"`
	Number            string `json:"number"`
	Month             string `json:"month"`
	Year              string `json:"year"`
	VerificationValue string `json:"verification_value"`
	Country           string `json:"country"`
	State             string `json:"state"`
}

type AccountRequest struct {
	AccountCode string      `json:"account_code"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Address     AddressInfo `json:"address"`
	BillingInfo BillingInfo `json:"billing_info"`
}

// Account is the remote customer profile, keyed by AccountCode.
type Account struct {
	AccountCode string           `json:"account_code"`
	State       string           `json:"state,omitempty"`
	Email       string           `json:"email,omitempty"`
	FirstName   string           `json:"first_name,omitempty"`
	LastName    string           `json:"last_name,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	Errors      ValidationErrors `json:"errors,omitempty"`
}

type TransactionRequest struct {
	AmountInCents float64 `json:"amount_in_cents"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description,omitempty"`
}

// Transaction statuses reported by the billing service
const (
	TransactionStatusSuccess  = "success"
	TransactionStatusDeclined = "declined"
	TransactionStatusFailed   = "failed"
	TransactionStatusVoid     = "void"
)

// Transaction is a single remote charge or refund.
type Transaction struct {
	UUID          string           `json:"uuid"`
	AccountCode   string           `json:"account_code,omitempty"`
	Action        string           `json:"action,omitempty"`
	AmountInCents float64          `json:"amount_in_cents"`
	Currency      string           `json:"currency,omitempty"`
	Status        string           `json:"status,omitempty"`
	Refundable    bool             `json:"refundable,omitempty"`
	CreatedAt     *time.Time       `json:"created_at,omitempty"`
	Errors        ValidationErrors `json:"errors,omitempty"`
}

// IsVoided reports whether the transaction has been fully voided already.
func (t *Transaction) IsVoided() bool {
	return t.Status == TransactionStatusVoid
}

// ValidationError is one field-level rejection returned by the billing service.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		if e.Field != "" {
			msgs = append(msgs, e.Field+" "+e.Message)
			continue
		}
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
