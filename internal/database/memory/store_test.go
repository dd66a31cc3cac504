package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/repository"
)

func seed(t *testing.T, s *Store, state domain.CultivationState) {
	t.Helper()
	ctx := context.Background()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateState(ctx, &state))
	require.NoError(t, tx.Commit(ctx))
}

func TestGetState_NotFound(t *testing.T) {
	s := NewStore()
	_, err := s.GetState(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrCultivationNotFound)
}

func TestTx_CommitPublishesWrites(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, domain.CultivationState{UserID: "u1", Realm: 1, RealmName: "Qi Refining"})

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	state, err := tx.GetStateWithLock(ctx, "u1")
	require.NoError(t, err)
	state.CurrentExp = 500
	require.NoError(t, tx.UpdateState(ctx, state))

	// not visible before commit
	before, err := s.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, before.CurrentExp)

	require.NoError(t, tx.Commit(ctx))
	after, err := s.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(500), after.CurrentExp)
}

func TestTx_RollbackDiscardsWrites(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, domain.CultivationState{UserID: "u1", Realm: 1})

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	state, err := tx.GetStateWithLock(ctx, "u1")
	require.NoError(t, err)
	state.TotalExp = 99
	require.NoError(t, tx.UpdateState(ctx, state))
	require.NoError(t, tx.InsertLog(ctx, &domain.SessionLogEntry{ID: "l1", UserID: "u1"}))
	require.NoError(t, tx.Rollback(ctx))

	got, err := s.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, got.TotalExp)

	logs, total, err := s.ListLogs(ctx, "u1", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, logs)
}

func TestTx_ClosedAfterCommit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	err = tx.Rollback(ctx)
	require.Error(t, err)
	assert.Equal(t, domain.ErrMsgTxClosed, err.Error())

	// SafeRollback after commit must not deadlock or panic
	repository.SafeRollback(ctx, tx)

	// lock was released
	tx2, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx2.Rollback(ctx))
}

func TestTx_CreateStateRejectsDuplicate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, domain.CultivationState{UserID: "u1", Realm: 1})

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	err = tx.CreateState(ctx, &domain.CultivationState{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrStateExists)
}

func TestTx_SerializesWriters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, domain.CultivationState{UserID: "u1", Realm: 1})

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := s.BeginTx(ctx)
			if !assert.NoError(t, err) {
				return
			}
			defer repository.SafeRollback(ctx, tx)
			state, err := tx.GetStateWithLock(ctx, "u1")
			if !assert.NoError(t, err) {
				return
			}
			state.CurrentExp++
			assert.NoError(t, tx.UpdateState(ctx, state))
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	got, err := s.GetState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), got.CurrentExp)
}

func TestBeginTx_CancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.BeginTx(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListLogs_NewestFirstWithPaging(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, domain.CultivationState{UserID: "u1", Realm: 1})

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		tx, err := s.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.InsertLog(ctx, &domain.SessionLogEntry{
			ID:      fmt.Sprintf("log-%d", i),
			UserID:  "u1",
			EndTime: base.Add(time.Duration(i) * time.Hour),
		}))
		require.NoError(t, tx.Commit(ctx))
	}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []string
	}{
		{"first page", 2, 0, []string{"log-4", "log-3"}},
		{"second page", 2, 2, []string{"log-2", "log-1"}},
		{"last partial page", 2, 4, []string{"log-0"}},
		{"past the end", 2, 6, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs, total, err := s.ListLogs(ctx, "u1", tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, 5, total)
			ids := make([]string, 0, len(logs))
			for _, l := range logs {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestResetDaily(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seed(t, s, domain.CultivationState{UserID: "active", Realm: 1, TodayMinutes: 30, StreakDays: 2, TotalDays: 5})
	seed(t, s, domain.CultivationState{UserID: "idle", Realm: 1, StreakDays: 4, TotalDays: 9})

	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	res, err := s.ResetDaily(ctx, at)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.StatesProcessed)
	assert.Equal(t, int64(1), res.StreaksExtended)
	assert.Equal(t, at, res.ResetAt)

	active, err := s.GetState(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, 0, active.TodayMinutes)
	assert.Equal(t, 3, active.StreakDays)
	assert.Equal(t, 6, active.TotalDays)

	idle, err := s.GetState(ctx, "idle")
	require.NoError(t, err)
	assert.Equal(t, 0, idle.StreakDays)
	assert.Equal(t, 9, idle.TotalDays)
}

func TestProfiles(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrElementProfileNotFound)

	err = s.SetProfile(ctx, domain.ElementProfile{UserID: "u1", PrimaryElement: "plasma"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, s.SetProfile(ctx, domain.ElementProfile{
		UserID: "u1", RootName: "Fire Spirit Root", PrimaryElement: domain.ElementFire, RootBonus: 1.2,
	}))
	p, err := s.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.ElementFire, p.PrimaryElement)
	assert.InDelta(t, 1.2, p.RootBonus, 1e-9)
}
