package service

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
)

// ProfileCreator is the part of the gateway the vault drives.
type ProfileCreator interface {
	CreateProfile(ctx context.Context, payment *domain.Payment) (*domain.GatewayResult, error)
}

// VaultService keeps the card → profile id link across requests and
// serializes profile creation per card with a row lock.
type VaultService struct {
	repo    ports.CardRepository
	gateway ProfileCreator
	logger  *slog.Logger
}

func NewVaultService(repo ports.CardRepository, gateway ProfileCreator, logger *slog.Logger) *VaultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VaultService{
		repo:    repo,
		gateway: gateway,
		logger:  logger,
	}
}

// EnsureProfile registers the card if needed, then creates its billing
// account unless one is already stored. The card row stays locked until
// the profile id is written, so concurrent calls for one card create at
// most one account.
func (v *VaultService) EnsureProfile(ctx context.Context, payment *domain.Payment) (*domain.GatewayResult, error) {
	if payment == nil || payment.Source == nil {
		return nil, domain.NewMissingRequiredFieldError("payment.source")
	}
	if payment.Source.ID == "" {
		return nil, domain.NewMissingRequiredFieldError("card_id")
	}
	if payment.Order == nil || payment.Order.User == nil || payment.Order.User.ID == "" {
		return nil, domain.NewMissingRequiredFieldError("order.user.id")
	}

	card := payment.Source
	var result *domain.GatewayResult

	err := v.repo.WithTx(ctx, func(txRepo ports.CardRepository) error {
		if err := txRepo.Upsert(ctx, &domain.CardProfile{
			CardID: card.ID,
			UserID: payment.Order.User.ID,
		}); err != nil {
			return err
		}

		stored, err := txRepo.FindByIDForUpdate(ctx, card.ID)
		if err != nil {
			return err
		}
		if stored.UserID != payment.Order.User.ID {
			v.logger.Warn("card requested by another user",
				"card_id", card.ID,
				"user_id", payment.Order.User.ID,
			)
			return domain.NewCardOwnerMismatchError(card.ID)
		}
		stored.Apply(card)

		res, err := v.gateway.CreateProfile(ctx, payment)
		if err != nil {
			return err
		}
		result = res

		if res.Success && stored.ProfileID == nil && card.HasProfile() {
			if err := txRepo.UpdateProfileID(ctx, card.ID, card.ProfileID()); err != nil {
				return err
			}
			v.logger.Info("card profile stored",
				"card_id", card.ID,
				"profile_id", card.ProfileID(),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// LoadCard copies the stored profile id for card.ID onto card.
func (v *VaultService) LoadCard(ctx context.Context, card *domain.CreditCard) error {
	if card == nil || card.ID == "" {
		return domain.NewMissingRequiredFieldError("card_id")
	}

	stored, err := v.repo.FindByID(ctx, card.ID)
	if err != nil {
		return err
	}
	stored.Apply(card)
	return nil
}
