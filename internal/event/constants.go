package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the first retry backoff
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 3
)

// Log message constants
const (
	LogMsgEventPublishFailed   = "Event publish failed, scheduling retry"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgEventRetryFailed     = "Event retry failed"
	LogMsgEventRetryExhausted  = "Event retry exhausted, event dropped"
	LogMsgEventDroppedShutdown = "Event dropped during shutdown"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff for an attempt: base, 2*base, 4*base...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
