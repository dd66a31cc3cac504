package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/repository"
)

// CultivationRepository implements repository.Cultivation for PostgreSQL
type CultivationRepository struct {
	db *pgxpool.Pool
}

// NewCultivationRepository creates a new cultivation repository
func NewCultivationRepository(db *pgxpool.Pool) *CultivationRepository {
	return &CultivationRepository{db: db}
}

// GetState retrieves the cultivation state for a user
func (r *CultivationRepository) GetState(ctx context.Context, userID string) (*domain.CultivationState, error) {
	state, err := scanState(r.db.QueryRow(ctx, queryGetState, userID))
	if err != nil {
		if errors.Is(err, domain.ErrCultivationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetState, err)
	}
	return state, nil
}

// ListLogs returns a page of session logs, newest first, and the total count
func (r *CultivationRepository) ListLogs(ctx context.Context, userID string, limit, offset int) ([]domain.SessionLogEntry, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, queryCountLogs, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountLogs, err)
	}
	if total == 0 || offset >= total {
		return []domain.SessionLogEntry{}, total, nil
	}

	rows, err := r.db.Query(ctx, queryListLogs, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListLogs, err)
	}
	defer rows.Close()

	logs := make([]domain.SessionLogEntry, 0, limit)
	for rows.Next() {
		var (
			e  domain.SessionLogEntry
			id uuid.UUID
		)
		if err := rows.Scan(
			&id,
			&e.UserID,
			&e.StartTime,
			&e.EndTime,
			&e.DurationMinutes,
			&e.ExpGained,
			&e.BonusApplied,
			&e.Context.Weather,
			&e.Context.Temperature,
			&e.Context.City,
			&e.Context.AnnualCycle,
			&e.Context.SeasonalQi,
			&e.Context.Meridian,
			&e.Context.MoonPhase,
			&e.Context.TotalBonus,
			&e.Truncated,
			&e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListLogs, err)
		}
		e.ID = id.String()
		logs = append(logs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListLogs, err)
	}

	return logs, total, nil
}

// ResetDaily rolls day counters over for every state in one statement
func (r *CultivationRepository) ResetDaily(ctx context.Context, at time.Time) (*domain.DailyResetResult, error) {
	result := &domain.DailyResetResult{ResetAt: at}
	if err := r.db.QueryRow(ctx, queryResetDaily, at).Scan(&result.StatesProcessed, &result.StreaksExtended); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToResetDaily, err)
	}
	return result, nil
}

// BeginTx starts a transaction and returns a CultivationTx
func (r *CultivationRepository) BeginTx(ctx context.Context) (repository.CultivationTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &cultivationTx{tx: tx}, nil
}

// Ping checks connectivity for the readiness probe
func (r *CultivationRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// cultivationTx implements repository.CultivationTx
type cultivationTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *cultivationTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *cultivationTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetStateWithLock retrieves the state with a FOR UPDATE row lock
func (t *cultivationTx) GetStateWithLock(ctx context.Context, userID string) (*domain.CultivationState, error) {
	state, err := scanState(t.tx.QueryRow(ctx, queryGetStateForUpdate, userID))
	if err != nil {
		if errors.Is(err, domain.ErrCultivationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockState, err)
	}
	return state, nil
}

// CreateState inserts a fresh state. It returns domain.ErrStateExists when the user
// already has a row, including one committed by a concurrent transaction.
func (t *cultivationTx) CreateState(ctx context.Context, state *domain.CultivationState) error {
	rawCtx, err := encodeContext(state.ActiveContext)
	if err != nil {
		return err
	}

	err = t.tx.QueryRow(ctx, queryInsertState,
		state.UserID,
		state.CurrentExp,
		state.TotalExp,
		state.Realm,
		state.RealmName,
		state.IsActive,
		state.ActiveStartedAt,
		rawCtx,
		state.TodayMinutes,
		state.TotalDays,
		state.StreakDays,
		state.LastCultivatedAt,
	).Scan(&state.CreatedAt, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrStateExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateState, err)
	}
	return nil
}

// UpdateState persists every mutable field of the state
func (t *cultivationTx) UpdateState(ctx context.Context, state *domain.CultivationState) error {
	rawCtx, err := encodeContext(state.ActiveContext)
	if err != nil {
		return err
	}

	err = t.tx.QueryRow(ctx, queryUpdateState,
		state.UserID,
		state.CurrentExp,
		state.TotalExp,
		state.Realm,
		state.RealmName,
		state.IsActive,
		state.ActiveStartedAt,
		rawCtx,
		state.TodayMinutes,
		state.TotalDays,
		state.StreakDays,
		state.LastCultivatedAt,
	).Scan(&state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCultivationNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateState, err)
	}
	return nil
}

// InsertLog appends an immutable session log entry
func (t *cultivationTx) InsertLog(ctx context.Context, entry *domain.SessionLogEntry) error {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return fmt.Errorf("%s: invalid log id: %w", ErrMsgFailedToInsertLog, err)
	}

	err = t.tx.QueryRow(ctx, queryInsertLog,
		id,
		entry.UserID,
		entry.StartTime,
		entry.EndTime,
		entry.DurationMinutes,
		entry.ExpGained,
		entry.BonusApplied,
		entry.Context.Weather,
		entry.Context.Temperature,
		entry.Context.City,
		entry.Context.AnnualCycle,
		entry.Context.SeasonalQi,
		entry.Context.Meridian,
		entry.Context.MoonPhase,
		entry.Context.TotalBonus,
		entry.Truncated,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLog, err)
	}
	return nil
}
