package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// ElementProfileRepository reads and seeds element profiles
type ElementProfileRepository struct {
	db *pgxpool.Pool
}

// NewElementProfileRepository creates a new element profile repository
func NewElementProfileRepository(db *pgxpool.Pool) *ElementProfileRepository {
	return &ElementProfileRepository{db: db}
}

// GetProfile returns domain.ErrElementProfileNotFound when the user has none
func (r *ElementProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.ElementProfile, error) {
	var (
		p       domain.ElementProfile
		element string
	)
	err := r.db.QueryRow(ctx, queryGetProfile, userID).Scan(&p.UserID, &p.RootName, &element, &p.RootBonus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrElementProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}

	p.PrimaryElement, err = domain.ParseElement(element)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}
	return &p, nil
}

// SetProfile inserts or replaces a profile
func (r *ElementProfileRepository) SetProfile(ctx context.Context, profile domain.ElementProfile) error {
	if !profile.PrimaryElement.Valid() {
		return domain.ErrInvalidInput
	}
	if _, err := r.db.Exec(ctx, queryUpsertProfile,
		profile.UserID, profile.RootName, string(profile.PrimaryElement), profile.RootBonus,
	); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertProfile, err)
	}
	return nil
}
