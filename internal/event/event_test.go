package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event
	bus.Subscribe(SessionStarted, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, bus.Publish(t.Context(), NewSessionStartedEvent("u1", "Hangzhou", 1.45, at)))
	require.NoError(t, bus.Publish(t.Context(), NewRealmAdvancedEvent("u1", 1, 2, "Foundation Establishment", at)))

	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(SessionStartedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "u1", payload.UserID)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
}

func TestMemoryBus_JoinsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(SessionEnded, func(ctx context.Context, e Event) error { return errors.New("boom") })
	bus.Subscribe(SessionEnded, func(ctx context.Context, e Event) error { return nil })

	err := bus.Publish(t.Context(), NewSessionEndedEvent("u1", &domain.SessionResult{DurationMinutes: 5}, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
}

type flakyBus struct {
	*MemoryBus
	failures atomic.Int32
	calls    atomic.Int32
}

func (f *flakyBus) Publish(ctx context.Context, e Event) error {
	f.calls.Add(1)
	if f.failures.Add(-1) >= 0 {
		return errors.New("transient")
	}
	return f.MemoryBus.Publish(ctx, e)
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := &flakyBus{MemoryBus: NewMemoryBus()}
	inner.failures.Store(2)
	delivered := make(chan struct{}, 1)
	inner.Subscribe(DailyResetComplete, func(ctx context.Context, e Event) error {
		delivered <- struct{}{}
		return nil
	})

	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	p.PublishWithRetry(t.Context(), NewDailyResetCompleteEvent(&domain.DailyResetResult{ResetAt: time.Now()}))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("event was never delivered")
	}
	require.NoError(t, p.Shutdown(t.Context()))
	assert.Equal(t, int32(3), inner.calls.Load())
}

func TestResilientPublisher_ShutdownAbandonsPendingRetries(t *testing.T) {
	defer goleak.VerifyNone(t)

	inner := &flakyBus{MemoryBus: NewMemoryBus()}
	inner.failures.Store(100)

	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Hour})
	assert.NoError(t, p.Publish(t.Context(), NewSessionStartedEvent("u", "c", 1, time.Now())))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(2*time.Second, 3))
}
