package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/domain"
	"github.com/DanielPopoola/ficmart-recurly-gateway/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CardRepository struct {
	pool *pgxpool.Pool
	q    Executor
}

func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{
		pool: db.Pool,
		q:    db.Pool,
	}
}

// FindByID retrieves the stored profile link for a card
func (r *CardRepository) FindByID(ctx context.Context, cardID string) (*domain.CardProfile, error) {
	query := `
			SELECT card_id, user_id, profile_id, created_at, updated_at
			FROM card_profiles
			WHERE card_id = $1
			`

	row := r.q.QueryRow(ctx, query, cardID)
	return scanCardProfile(row, cardID)
}

// FindByIDForUpdate retrieves the card row and locks it until the
// surrounding transaction ends
func (r *CardRepository) FindByIDForUpdate(ctx context.Context, cardID string) (*domain.CardProfile, error) {
	query := `
			SELECT card_id, user_id, profile_id, created_at, updated_at
			FROM card_profiles
			WHERE card_id = $1
			FOR UPDATE
			`

	row := r.q.QueryRow(ctx, query, cardID)
	return scanCardProfile(row, cardID)
}

// Upsert inserts the card row if it does not exist yet. An existing row,
// and its profile id, is left untouched.
func (r *CardRepository) Upsert(ctx context.Context, card *domain.CardProfile) error {
	query := `INSERT INTO card_profiles (card_id, user_id, profile_id)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (card_id) DO NOTHING`

	_, err := r.q.Exec(ctx, query, card.CardID, card.UserID, card.ProfileID)
	if err != nil {
		return fmt.Errorf("failed to upsert card profile: %w", err)
	}
	return nil
}

func (r *CardRepository) UpdateProfileID(ctx context.Context, cardID, profileID string) error {
	query := `UPDATE card_profiles SET profile_id = $1, updated_at = NOW()
			  WHERE card_id = $2`

	cmdTag, err := r.q.Exec(ctx, query, profileID, cardID)
	if err != nil {
		return fmt.Errorf("failed to update card profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return domain.NewCardNotFoundError(cardID)
	}
	return nil
}

// WithTx executes a function within a database transaction
func (r *CardRepository) WithTx(ctx context.Context, fn func(ports.CardRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	repoWithTx := &CardRepository{
		pool: r.pool,
		q:    tx,
	}

	if err := fn(repoWithTx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanCardProfile(row pgx.Row, cardID string) (*domain.CardProfile, error) {
	var c domain.CardProfile
	err := row.Scan(
		&c.CardID,
		&c.UserID,
		&c.ProfileID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewCardNotFoundError(cardID)
		}
		return nil, fmt.Errorf("failed to scan card profile: %w", err)
	}
	return &c, nil
}
