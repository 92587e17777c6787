package service

import (
	"context"
	"sync"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
)

// MockCardRepository
type MockCardRepository struct {
	mu    sync.Mutex
	txMu  sync.Mutex
	cards map[string]*domain.CardProfile

	FindByIDFn        func(ctx context.Context, cardID string) (*domain.CardProfile, error)
	UpsertFn          func(ctx context.Context, card *domain.CardProfile) error
	UpdateProfileIDFn func(ctx context.Context, cardID, profileID string) error
	WithTxFn          func(ctx context.Context, fn func(repo ports.CardRepository) error) error
}

func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{
		cards: make(map[string]*domain.CardProfile),
	}
}

func (m *MockCardRepository) FindByID(ctx context.Context, cardID string) (*domain.CardProfile, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, cardID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.cards[cardID]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.NewCardNotFoundError(cardID)
}

func (m *MockCardRepository) FindByIDForUpdate(ctx context.Context, cardID string) (*domain.CardProfile, error) {
	return m.FindByID(ctx, cardID)
}

func (m *MockCardRepository) Upsert(ctx context.Context, card *domain.CardProfile) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, card)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[card.CardID]; !ok {
		copied := *card
		m.cards[card.CardID] = &copied
	}
	return nil
}

func (m *MockCardRepository) UpdateProfileID(ctx context.Context, cardID, profileID string) error {
	if m.UpdateProfileIDFn != nil {
		return m.UpdateProfileIDFn(ctx, cardID, profileID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cards[cardID]
	if !ok {
		return domain.NewCardNotFoundError(cardID)
	}
	c.ProfileID = &profileID
	return nil
}

// WithTx serializes callers on a single lock, standing in for the row lock.
func (m *MockCardRepository) WithTx(ctx context.Context, fn func(repo ports.CardRepository) error) error {
	if m.WithTxFn != nil {
		return m.WithTxFn(ctx, fn)
	}
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

// MockBillingPort records every call and answers from the Fn fields or
// from canned successes.
type MockBillingPort struct {
	mu    sync.Mutex
	calls map[string]int

	AccountRequests     []domain.AccountRequest
	FoundAccounts       []string
	TransactionRequests []domain.TransactionRequest
	FoundTransactions   []string
	Refunds             []RefundCall

	CreateAccountFn     func(ctx context.Context, req domain.AccountRequest) (*domain.Account, error)
	FindAccountFn       func(ctx context.Context, accountCode string) (*domain.Account, error)
	CreateTransactionFn func(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error)
	FindTransactionFn   func(ctx context.Context, uuid string) (*domain.Transaction, error)
	RefundTransactionFn func(ctx context.Context, uuid string, amountInCents *float64) (*domain.Transaction, error)
}

// RefundCall is one recorded RefundTransaction invocation.
type RefundCall struct {
	UUID          string
	AmountInCents *float64
}

func (m *MockBillingPort) inc(method string) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockBillingPort) GetCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// TotalCalls counts calls across every method.
func (m *MockBillingPort) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MockBillingPort) CreateAccount(ctx context.Context, req domain.AccountRequest) (*domain.Account, error) {
	m.mu.Lock()
	m.inc("CreateAccount")
	m.AccountRequests = append(m.AccountRequests, req)
	m.mu.Unlock()
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, req)
	}
	return &domain.Account{AccountCode: req.AccountCode}, nil
}

func (m *MockBillingPort) FindAccount(ctx context.Context, accountCode string) (*domain.Account, error) {
	m.mu.Lock()
	m.inc("FindAccount")
	m.FoundAccounts = append(m.FoundAccounts, accountCode)
	m.mu.Unlock()
	if m.FindAccountFn != nil {
		return m.FindAccountFn(ctx, accountCode)
	}
	return &domain.Account{AccountCode: accountCode}, nil
}

func (m *MockBillingPort) CreateTransaction(ctx context.Context, accountCode string, req domain.TransactionRequest) (*domain.Transaction, error) {
	m.mu.Lock()
	m.inc("CreateTransaction")
	m.TransactionRequests = append(m.TransactionRequests, req)
	m.mu.Unlock()
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, accountCode, req)
	}
	return &domain.Transaction{
		UUID:          "txn-123",
		AccountCode:   accountCode,
		Action:        "purchase",
		AmountInCents: req.AmountInCents,
		Currency:      req.Currency,
		Status:        domain.TransactionStatusSuccess,
	}, nil
}

func (m *MockBillingPort) FindTransaction(ctx context.Context, uuid string) (*domain.Transaction, error) {
	m.mu.Lock()
	m.inc("FindTransaction")
	m.FoundTransactions = append(m.FoundTransactions, uuid)
	m.mu.Unlock()
	if m.FindTransactionFn != nil {
		return m.FindTransactionFn(ctx, uuid)
	}
	return &domain.Transaction{
		UUID:   uuid,
		Action: "purchase",
		Status: domain.TransactionStatusSuccess,
	}, nil
}

func (m *MockBillingPort) RefundTransaction(ctx context.Context, uuid string, amountInCents *float64) (*domain.Transaction, error) {
	m.mu.Lock()
	m.inc("RefundTransaction")
	m.Refunds = append(m.Refunds, RefundCall{UUID: uuid, AmountInCents: amountInCents})
	m.mu.Unlock()
	if m.RefundTransactionFn != nil {
		return m.RefundTransactionFn(ctx, uuid, amountInCents)
	}
	return &domain.Transaction{
		UUID:   "refund-" + uuid,
		Action: "refund",
		Status: domain.TransactionStatusSuccess,
	}, nil
}
