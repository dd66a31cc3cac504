// Package memory is an in-process store used for local runs and service tests.
// A transaction holds the store-wide lock from BeginTx until Commit or Rollback,
// which gives the same per-user serialization as SELECT ... FOR UPDATE.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// Store keeps cultivation states, session logs and element profiles in maps
type Store struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	states   map[string]domain.CultivationState
	logs     map[string][]domain.SessionLogEntry
	profiles map[string]domain.ElementProfile
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		states:   make(map[string]domain.CultivationState),
		logs:     make(map[string][]domain.SessionLogEntry),
		profiles: make(map[string]domain.ElementProfile),
		now:      time.Now,
	}
}

// GetState retrieves the cultivation state for a user
func (s *Store) GetState(_ context.Context, userID string) (*domain.CultivationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[userID]
	if !ok {
		return nil, domain.ErrCultivationNotFound
	}
	return cloneState(state), nil
}

// ListLogs returns a page of session logs, newest first
func (s *Store) ListLogs(_ context.Context, userID string, limit, offset int) ([]domain.SessionLogEntry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.logs[userID]
	total := len(all)
	if offset >= total || limit <= 0 {
		return []domain.SessionLogEntry{}, total, nil
	}

	// stored oldest first
	out := make([]domain.SessionLogEntry, 0, min(limit, total-offset))
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, total, nil
}

// ResetDaily rolls the day counters of every state
func (s *Store) ResetDaily(_ context.Context, at time.Time) (*domain.DailyResetResult, error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &domain.DailyResetResult{ResetAt: at}
	for id, state := range s.states {
		if state.TodayMinutes > 0 {
			state.StreakDays++
			state.TotalDays++
			result.StreaksExtended++
		} else {
			state.StreakDays = 0
		}
		state.TodayMinutes = 0
		state.UpdatedAt = at
		s.states[id] = state
		result.StatesProcessed++
	}
	return result, nil
}

// BeginTx takes the store lock; it is released by Commit or Rollback
func (s *Store) BeginTx(ctx context.Context) (repository.CultivationTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	return &cultivationTx{store: s, states: make(map[string]domain.CultivationState)}, nil
}

// SetProfile stores or replaces an element profile
func (s *Store) SetProfile(_ context.Context, profile domain.ElementProfile) error {
	if !profile.PrimaryElement.Valid() {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	return nil
}

// GetProfile returns domain.ErrElementProfileNotFound when the user has none
func (s *Store) GetProfile(_ context.Context, userID string) (*domain.ElementProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrElementProfileNotFound
	}
	return &profile, nil
}

// Ping satisfies the readiness check
func (s *Store) Ping(context.Context) error {
	return nil
}

type cultivationTx struct {
	store  *Store
	states map[string]domain.CultivationState
	logs   []domain.SessionLogEntry
	closed bool
}

func (t *cultivationTx) GetStateWithLock(_ context.Context, userID string) (*domain.CultivationState, error) {
	if t.closed {
		return nil, errTxClosed
	}
	if state, ok := t.states[userID]; ok {
		return cloneState(state), nil
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	state, ok := t.store.states[userID]
	if !ok {
		return nil, domain.ErrCultivationNotFound
	}
	return cloneState(state), nil
}

func (t *cultivationTx) CreateState(_ context.Context, state *domain.CultivationState) error {
	if t.closed {
		return errTxClosed
	}
	t.store.mu.RLock()
	_, exists := t.store.states[state.UserID]
	t.store.mu.RUnlock()
	if _, staged := t.states[state.UserID]; exists || staged {
		return domain.ErrStateExists
	}

	now := t.store.now()
	state.CreatedAt, state.UpdatedAt = now, now
	t.states[state.UserID] = *cloneState(*state)
	return nil
}

func (t *cultivationTx) UpdateState(_ context.Context, state *domain.CultivationState) error {
	if t.closed {
		return errTxClosed
	}
	state.UpdatedAt = t.store.now()
	t.states[state.UserID] = *cloneState(*state)
	return nil
}

func (t *cultivationTx) InsertLog(_ context.Context, entry *domain.SessionLogEntry) error {
	if t.closed {
		return errTxClosed
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = t.store.now()
	}
	t.logs = append(t.logs, *entry)
	return nil
}

func (t *cultivationTx) Commit(context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	defer t.store.txMu.Unlock()

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id, state := range t.states {
		t.store.states[id] = state
	}
	for _, entry := range t.logs {
		t.store.logs[entry.UserID] = append(t.store.logs[entry.UserID], entry)
	}
	return nil
}

func (t *cultivationTx) Rollback(context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.store.txMu.Unlock()
	return nil
}

func cloneState(s domain.CultivationState) *domain.CultivationState {
	out := s
	if s.ActiveStartedAt != nil {
		v := *s.ActiveStartedAt
		out.ActiveStartedAt = &v
	}
	if s.ActiveContext != nil {
		v := *s.ActiveContext
		out.ActiveContext = &v
	}
	if s.LastCultivatedAt != nil {
		v := *s.LastCultivatedAt
		out.LastCultivatedAt = &v
	}
	return &out
}
