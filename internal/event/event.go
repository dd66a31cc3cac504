package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Cultivation event types
const (
	SessionStarted     Type = domain.EventTypeSessionStarted
	SessionEnded       Type = domain.EventTypeSessionEnded
	RealmAdvanced      Type = domain.EventTypeRealmAdvanced
	DailyResetComplete Type = domain.EventTypeDailyResetComplete
)

// SessionStartedPayloadV1 is the typed payload for session started events
type SessionStartedPayloadV1 struct {
	UserID          string  `json:"user_id"`
	City            string  `json:"city"`
	TotalMultiplier float64 `json:"total_multiplier"`
}

// SessionEndedPayloadV1 is the typed payload for session ended events
type SessionEndedPayloadV1 struct {
	UserID          string  `json:"user_id"`
	DurationMinutes int     `json:"duration_minutes"`
	ExpGained       int64   `json:"exp_gained"`
	BonusApplied    float64 `json:"bonus_applied"`
	Truncated       bool    `json:"truncated"`
}

// RealmAdvancedPayloadV1 is the typed payload for realm advancement events
type RealmAdvancedPayloadV1 struct {
	UserID    string `json:"user_id"`
	FromRealm int    `json:"from_realm"`
	ToRealm   int    `json:"to_realm"`
	RealmName string `json:"realm_name"`
}

// DailyResetCompletePayloadV1 is the typed payload for daily reset complete events
type DailyResetCompletePayloadV1 struct {
	ResetTime       time.Time `json:"reset_time"`
	StatesProcessed int64     `json:"states_processed"`
	StreaksExtended int64     `json:"streaks_extended"`
}

func newEvent(t Type, payload interface{}, at time.Time) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload, Timestamp: at}
}

// NewSessionStartedEvent creates a new session started event
func NewSessionStartedEvent(userID, city string, multiplier float64, at time.Time) Event {
	return newEvent(SessionStarted, SessionStartedPayloadV1{UserID: userID, City: city, TotalMultiplier: multiplier}, at)
}

// NewSessionEndedEvent creates a new session ended event
func NewSessionEndedEvent(userID string, result *domain.SessionResult, at time.Time) Event {
	return newEvent(SessionEnded, SessionEndedPayloadV1{
		UserID:          userID,
		DurationMinutes: result.DurationMinutes,
		ExpGained:       result.ExpGained,
		BonusApplied:    result.BonusApplied,
		Truncated:       result.Truncated,
	}, at)
}

// NewRealmAdvancedEvent creates a new realm advanced event
func NewRealmAdvancedEvent(userID string, from, to int, name string, at time.Time) Event {
	return newEvent(RealmAdvanced, RealmAdvancedPayloadV1{UserID: userID, FromRealm: from, ToRealm: to, RealmName: name}, at)
}

// NewDailyResetCompleteEvent creates a new daily reset complete event
func NewDailyResetCompleteEvent(result *domain.DailyResetResult) Event {
	return newEvent(DailyResetComplete, DailyResetCompletePayloadV1{
		ResetTime:       result.ResetAt,
		StatesProcessed: result.StatesProcessed,
		StreaksExtended: result.StreaksExtended,
	}, result.ResetAt)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
