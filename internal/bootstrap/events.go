package bootstrap

import (
	"log/slog"

	"github.com/osse101/Cultivation_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus and the retrying publisher in front of it.
// Services publish through the publisher; subscribers register on either.
func InitializeEventSystem() (*event.MemoryBus, *event.ResilientPublisher) {
	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay)

	return bus, publisher
}
