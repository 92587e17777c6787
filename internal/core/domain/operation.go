package domain

import (
	"fmt"
	"math"
	"strings"
)

// OperationKind enumerates everything the storefront can ask of a gateway.
type OperationKind string

const (
	OpCreateProfile OperationKind = "create_profile"
	OpPurchase      OperationKind = "purchase"
	OpVoid          OperationKind = "void"
	OpCredit        OperationKind = "credit"
	OpAuthorize     OperationKind = "authorize"
	OpCapture       OperationKind = "capture"
)

// AllOperations lists every kind in a stable order.
var AllOperations = []OperationKind{
	OpCreateProfile,
	OpPurchase,
	OpVoid,
	OpCredit,
	OpAuthorize,
	OpCapture,
}

// Supported reports whether the billing service can perform this kind.
// Authorize and capture have no counterpart: purchases settle immediately.
func (k OperationKind) Supported() bool {
	switch k {
	case OpCreateProfile, OpPurchase, OpVoid, OpCredit:
		return true
	default:
		return false
	}
}

// Operation is a single gateway request in uniform shape. Fields that a
// kind does not use are ignored.
type Operation struct {
	Kind          OperationKind
	Amount        float64
	Payment       *Payment
	Card          *CreditCard
	TransactionID string
	Options       Options
}

// AmountPolicy decides how storefront amounts map onto amount_in_cents.
type AmountPolicy string

const (
	// AmountPassThrough sends the amount unchanged. This is the historical
	// behavior: callers are expected to pass cent-denominated values.
	AmountPassThrough AmountPolicy = "passthrough"
	// AmountToCents treats the amount as major units and multiplies by 100.
	AmountToCents AmountPolicy = "cents"
)

func ParseAmountPolicy(s string) (AmountPolicy, error) {
	switch AmountPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", AmountPassThrough:
		return AmountPassThrough, nil
	case AmountToCents:
		return AmountToCents, nil
	default:
		return "", fmt.Errorf("unknown amount policy %q", s)
	}
}

// InCents converts amount according to the policy.
func (p AmountPolicy) InCents(amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, NewInvalidAmountError(amount)
	}
	if p == AmountToCents {
		return math.Round(amount * 100), nil
	}
	return amount, nil
}
