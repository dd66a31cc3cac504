package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "cultivation.session_started")
const (
	// EventTypeSessionStarted is published when a user begins a cultivation session
	EventTypeSessionStarted = "cultivation.session_started"

	// EventTypeSessionEnded is published when a session completes and experience is credited
	EventTypeSessionEnded = "cultivation.session_ended"

	// EventTypeRealmAdvanced is published once per session that crosses one or more realm thresholds
	EventTypeRealmAdvanced = "cultivation.realm_advanced"

	// EventTypeDailyResetComplete is published when the daily rollover completes
	EventTypeDailyResetComplete = "daily_reset.complete"
)
