package domain

import "time"

// CultivationState is the per-user experience ledger and session flag.
// IsActive is true exactly when ActiveStartedAt is non-nil.
type CultivationState struct {
	UserID           string         `json:"user_id"`
	CurrentExp       int64          `json:"current_exp"`
	TotalExp         int64          `json:"total_exp"`
	Realm            int            `json:"realm"`
	RealmName        string         `json:"realm_name"`
	IsActive         bool           `json:"is_active"`
	ActiveStartedAt  *time.Time     `json:"active_started_at,omitempty"`
	ActiveContext    *ContextLabels `json:"active_context,omitempty"`
	TodayMinutes     int            `json:"today_minutes"`
	TotalDays        int            `json:"total_days"`
	StreakDays       int            `json:"streak_days"`
	LastCultivatedAt *time.Time     `json:"last_cultivated_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// SessionLogEntry is the immutable record of one completed session
type SessionLogEntry struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	ExpGained       int64         `json:"exp_gained"`
	BonusApplied    float64       `json:"bonus_applied"`
	Context         ContextLabels `json:"context"`
	Truncated       bool          `json:"truncated"`
	CreatedAt       time.Time     `json:"created_at"`
}

// SessionContext is returned by BeginSession
type SessionContext struct {
	IsActive        bool             `json:"is_active"`
	ActiveStartedAt time.Time        `json:"active_started_at"`
	Context         *TemporalContext `json:"context"`
}

// SessionResult is returned by EndSession
type SessionResult struct {
	DurationMinutes int               `json:"duration_minutes"`
	Truncated       bool              `json:"truncated"`
	BaseExp         int64             `json:"base_exp"`
	BonusApplied    float64           `json:"bonus_applied"`
	ExpGained       int64             `json:"exp_gained"`
	LevelUp         bool              `json:"level_up"`
	NewRealm        *int              `json:"new_realm,omitempty"`
	NewRealmName    string            `json:"new_realm_name,omitempty"`
	RealmsGained    int               `json:"realms_gained"`
	Rationale       []string          `json:"rationale"`
	Cultivation     *CultivationState `json:"cultivation"`
}

// RealmProgress describes distance to the next threshold
type RealmProgress struct {
	Realm         int     `json:"realm"`
	Name          string  `json:"name"`
	Threshold     int64   `json:"threshold"`
	ExpToNext     int64   `json:"exp_to_next"`
	PercentToNext float64 `json:"percent_to_next"`
	IsMaxRealm    bool    `json:"is_max_realm"`
}

// CultivationStatus is the read-only snapshot returned by GetStatus
type CultivationStatus struct {
	Cultivation *CultivationState `json:"cultivation"`
	Profile     *ElementProfile   `json:"profile"`
	Progress    *RealmProgress    `json:"progress,omitempty"`
}

// Pagination describes a page of results
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// SessionHistory is a page of session log entries, newest first
type SessionHistory struct {
	Logs       []SessionLogEntry `json:"logs"`
	Pagination Pagination        `json:"pagination"`
}

// DailyResetResult summarizes a day rollover
type DailyResetResult struct {
	StatesProcessed int64     `json:"states_processed"`
	StreaksExtended int64     `json:"streaks_extended"`
	ResetAt         time.Time `json:"reset_at"`
}
