package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultService_ConcurrentEnsureProfile(t *testing.T) {
	mockRepo := NewMockCardRepository()
	mockBilling := &MockBillingPort{
		CreateAccountFn: func(ctx context.Context, req domain.AccountRequest) (*domain.Account, error) {
			// Slow billing service widens the race window
			time.Sleep(50 * time.Millisecond)
			return &domain.Account{AccountCode: req.AccountCode}, nil
		},
	}
	vault := NewVaultService(mockRepo, newTestGateway(mockBilling), nil)

	const numRequests = 5

	var wg sync.WaitGroup
	results := make(chan *domain.GatewayResult, numRequests)
	errs := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := vault.EnsureProfile(context.Background(), tomSmithPayment(newCard(nil)))
			if err != nil {
				errs <- err
				return
			}
			results <- res
		}()
	}

	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
	for res := range results {
		assert.True(t, res.Success)
		assert.Equal(t, "1", res.Reference)
	}

	assert.Equal(t, 1, mockBilling.GetCalls("CreateAccount"), "only one account may be created per card")

	stored, err := mockRepo.FindByID(context.Background(), "card-1")
	require.NoError(t, err)
	require.NotNil(t, stored.ProfileID)
	assert.Equal(t, "1", *stored.ProfileID)
}

func TestGateway_ConcurrentOperationsShareConfiguration(t *testing.T) {
	mockBilling := &MockBillingPort{}
	gateway := newTestGateway(mockBilling)

	const workers = 10

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			card := newCard(strPtr(fmt.Sprintf("acct-%d", i)))
			_, err := gateway.Purchase(context.Background(), float64(100+i), card, domain.Options{})
			assert.NoError(t, err)
			_, err = gateway.Credit(context.Background(), 10, card, testTransactionID, domain.Options{})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, mockBilling.GetCalls("FindAccount"))
	assert.Equal(t, workers, mockBilling.GetCalls("CreateTransaction"))
	assert.Equal(t, workers, mockBilling.GetCalls("FindTransaction"))
	assert.Equal(t, workers, mockBilling.GetCalls("RefundTransaction"))
}

func TestGateway_ReconfigureDuringOperations(t *testing.T) {
	clients := []*MockBillingPort{{}, {}}
	var mu sync.Mutex
	next := 0
	gateway := NewGateway(func(domain.Credentials) (ports.BillingPort, error) {
		mu.Lock()
		defer mu.Unlock()
		c := clients[next%len(clients)]
		next++
		return c, nil
	}, domain.AmountPassThrough, nil)
	require.NoError(t, gateway.Configure(domain.Credentials{Subdomain: "site-a", APIKey: "a"}))

	const purchases = 20

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			sub := "site-a"
			if i%2 == 0 {
				sub = "site-b"
			}
			assert.NoError(t, gateway.Configure(domain.Credentials{Subdomain: sub, APIKey: sub}))
		}
	}()

	for i := 0; i < purchases; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gateway.Purchase(context.Background(), 1, newCard(strPtr("1")), domain.Options{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total := clients[0].GetCalls("CreateTransaction") + clients[1].GetCalls("CreateTransaction")
	assert.Equal(t, purchases, total)
}
