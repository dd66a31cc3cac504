package bootstrap

import "time"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingService      = "Starting cultivation service"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgConfigurationWarning = "Configuration warning"
)

// Event system defaults
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// Log messages for store and engine initialization
const (
	LogMsgUsingMemoryStore    = "Using in-memory store; state is lost on restart"
	LogMsgUsingPostgresStore  = "Using postgres store"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgWeatherConfigured   = "Live weather configured"
	LogMsgWeatherUnconfigured = "WEATHER_API_KEY not set; placeholder weather will be used"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to apply migrations"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDailyResetWorkerFailed     = "Daily reset worker shutdown failed"
)
