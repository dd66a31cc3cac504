package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/Cultivation_Go/internal/clock"
	"github.com/osse101/Cultivation_Go/internal/domain"
)

type stubResetter struct {
	calls  atomic.Int32
	err    error
	called chan struct{}
	onCall func()
}

func newStubResetter() *stubResetter {
	return &stubResetter{called: make(chan struct{}, 16)}
}

func (s *stubResetter) ResetDaily(context.Context) (*domain.DailyResetResult, error) {
	s.calls.Add(1)
	if s.onCall != nil {
		s.onCall()
	}
	defer func() { s.called <- struct{}{} }()
	if s.err != nil {
		return nil, s.err
	}
	return &domain.DailyResetResult{StatesProcessed: 3, StreaksExtended: 2}, nil
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestTimeUntilNextReset(t *testing.T) {
	shanghai := mustLoad(t, "Asia/Shanghai")
	newYork := mustLoad(t, "America/New_York")

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Duration
	}{
		{"mid afternoon UTC", time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC), time.UTC, 9 * time.Hour},
		{"exactly midnight rolls to next day", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), time.UTC, 24 * time.Hour},
		{"one second before midnight", time.Date(2026, 5, 1, 23, 59, 59, 0, time.UTC), time.UTC, time.Second},
		// 15:00 UTC is 23:00 in Shanghai
		{"other zone", time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC), shanghai, time.Hour},
		// 2026-03-08 is the spring-forward day in New York; local midnight to midnight is 23h
		{"spring forward day", time.Date(2026, 3, 8, 0, 0, 0, 0, newYork), newYork, 23 * time.Hour},
		{"fall back day", time.Date(2026, 11, 1, 0, 0, 0, 0, newYork), newYork, 25 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeUntilNextReset(tt.now, tt.loc))
		})
	}
}

func TestDailyResetWorker_ExecuteReset(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := newStubResetter()
	w := NewDailyResetWorker(r, time.UTC, nil)

	w.executeReset()

	select {
	case <-r.called:
	case <-time.After(2 * time.Second):
		t.Fatal("reset was not executed")
	}
	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestDailyResetWorker_ExecuteResetFailureIsContained(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := newStubResetter()
	r.err = errors.New("db down")
	w := NewDailyResetWorker(r, time.UTC, nil)

	w.executeReset()
	<-r.called

	require.NoError(t, w.Shutdown(context.Background()))
}

func TestDailyResetWorker_FiresAtMidnight(t *testing.T) {
	defer goleak.VerifyNone(t)

	clk := clock.NewSimulatedClock(time.Date(2026, 5, 1, 23, 59, 59, 900_000_000, time.UTC))
	r := newStubResetter()
	r.onCall = func() { clk.Set(time.Date(2026, 5, 2, 0, 0, 1, 0, time.UTC)) }

	w := NewDailyResetWorker(r, time.UTC, clk)
	w.Start()

	select {
	case <-r.called:
	case <-time.After(3 * time.Second):
		t.Fatal("reset did not fire")
	}

	require.NoError(t, w.Shutdown(context.Background()))
	assert.GreaterOrEqual(t, r.calls.Load(), int32(1))
}

func TestDailyResetWorker_StandbyThenShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	clk := clock.NewSimulatedClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	r := newStubResetter()
	w := NewDailyResetWorker(r, time.UTC, clk)
	w.Start()

	w.mu.Lock()
	armed := w.timer != nil
	w.mu.Unlock()
	assert.True(t, armed)

	require.NoError(t, w.Shutdown(context.Background()))
	// Shutdown twice is safe
	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, int32(0), r.calls.Load())
}

func TestDailyResetWorker_ShutdownTimeout(t *testing.T) {
	release := make(chan struct{})
	r := newStubResetter()
	r.onCall = func() { <-release }

	w := NewDailyResetWorker(r, time.UTC, nil)
	w.executeReset()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)

	close(release)
	<-r.called
}
