package postgres

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// encodeContext marshals the Begin snapshot for the JSONB column; nil stays NULL
func encodeContext(labels *domain.ContextLabels) ([]byte, error) {
	if labels == nil {
		return nil, nil
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeContext, err)
	}
	return b, nil
}

func decodeContext(raw []byte) (*domain.ContextLabels, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var labels domain.ContextLabels
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeContext, err)
	}
	return &labels, nil
}

// scanState reads one cultivation_states row in stateColumns order
func scanState(row pgx.Row) (*domain.CultivationState, error) {
	var (
		s      domain.CultivationState
		rawCtx []byte
	)
	err := row.Scan(
		&s.UserID,
		&s.CurrentExp,
		&s.TotalExp,
		&s.Realm,
		&s.RealmName,
		&s.IsActive,
		&s.ActiveStartedAt,
		&rawCtx,
		&s.TodayMinutes,
		&s.TotalDays,
		&s.StreakDays,
		&s.LastCultivatedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCultivationNotFound
		}
		return nil, err
	}

	if s.ActiveContext, err = decodeContext(rawCtx); err != nil {
		return nil, err
	}
	return &s, nil
}
