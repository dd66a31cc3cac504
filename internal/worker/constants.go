package worker

import "time"

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting  = "Daily reset starting"
	LogMsgDailyResetCompleted = "Daily reset completed"
	LogMsgDailyResetFailed    = "Daily reset failed"
	LogMsgDailyResetStandby   = "Daily reset standby, rechecking later"
	LogMsgDailyResetApproach  = "Daily reset scheduled"
	LogMsgDailyResetShutdown  = "Shutting down daily reset worker"
	LogMsgDailyResetCancelled = "Cancelled pending daily reset"
	LogMsgDailyResetDone      = "Daily reset worker shutdown complete"
	LogMsgDailyResetTimeout   = "Daily reset worker shutdown timeout, a reset may still be running"
)

// Scheduling windows
const (
	// Beyond this distance the worker parks in standby instead of arming the reset timer
	standbyThreshold = time.Hour
	// How long before the reset a standby timer wakes up
	standbyLead = 45 * time.Minute
	// A timer that fires with more than this remaining fired early
	earlyFireTolerance = 10 * time.Second
	// Remaining time above this means the reset just happened
	justResetThreshold = 23 * time.Hour
)
