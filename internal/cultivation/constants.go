package cultivation

// Session rules
const (
	// ExpPerMinute is the base experience rate before multipliers
	ExpPerMinute = 10
	// MinSessionMinutes is credited for any completed session
	MinSessionMinutes = 1
	// MaxSessionMinutes caps a single session (8 hours)
	MaxSessionMinutes = 480
)

// History paging
const (
	DefaultHistoryPageSize = 10
	MaxHistoryPageSize     = 50
)

// RationaleNoProfile is used when the user has no elemental root on record
const RationaleNoProfile = "no spiritual root recorded, temporal qi applied unaltered"

// Log messages
const (
	LogMsgBeginSession       = "Cultivation session starting"
	LogMsgSessionStarted     = "Cultivation session started"
	LogMsgEndSession         = "Cultivation session ending"
	LogMsgSessionEnded       = "Cultivation session completed"
	LogMsgSessionTruncated   = "Session exceeded maximum length, credit capped"
	LogMsgRealmAdvanced      = "Realm advanced"
	LogMsgStateProvisioned   = "Provisioned cultivation state"
	LogMsgProvisionRaced     = "Cultivation state provisioned concurrently, using existing row"
	LogMsgPublishFailed      = "Failed to publish cultivation event"
	LogMsgDailyResetComplete = "Daily cultivation reset complete"
)
