package ports

import (
	"context"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
)

// CardRepository stores the card → profile id link
type CardRepository interface {
	FindByID(ctx context.Context, cardID string) (*domain.CardProfile, error)
	FindByIDForUpdate(ctx context.Context, cardID string) (*domain.CardProfile, error)
	Upsert(ctx context.Context, card *domain.CardProfile) error
	UpdateProfileID(ctx context.Context, cardID, profileID string) error

	// WithTx executes a function within a database transaction.
	WithTx(ctx context.Context, fn func(CardRepository) error) error
}
