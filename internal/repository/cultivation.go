package repository

import (
	"context"
	"time"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// Cultivation handles cultivation state and session log persistence
type Cultivation interface {
	// GetState retrieves the cultivation state for a user.
	// Returns domain.ErrCultivationNotFound when no record exists.
	GetState(ctx context.Context, userID string) (*domain.CultivationState, error)

	// ListLogs returns a page of session logs, newest first, and the total count
	ListLogs(ctx context.Context, userID string, limit, offset int) ([]domain.SessionLogEntry, int, error)

	// ResetDaily rolls day counters over for every state
	ResetDaily(ctx context.Context, at time.Time) (*domain.DailyResetResult, error)

	// Transaction support
	BeginTx(ctx context.Context) (CultivationTx, error)
}

// CultivationTx defines the interface for cultivation transactions
type CultivationTx interface {
	Tx

	// GetStateWithLock retrieves the state and holds it for the rest of the transaction
	GetStateWithLock(ctx context.Context, userID string) (*domain.CultivationState, error)

	// CreateState inserts a fresh state at the entry realm
	CreateState(ctx context.Context, state *domain.CultivationState) error

	// UpdateState persists every mutable field of the state
	UpdateState(ctx context.Context, state *domain.CultivationState) error

	// InsertLog appends an immutable session log entry
	InsertLog(ctx context.Context, entry *domain.SessionLogEntry) error
}

// ElementProfile reads user element profiles owned by another subsystem
type ElementProfile interface {
	// GetProfile returns domain.ErrElementProfileNotFound when the user has none
	GetProfile(ctx context.Context, userID string) (*domain.ElementProfile, error)
}
