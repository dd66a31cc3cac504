package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Cultivation Operations
const (
	ErrMsgFailedToGetState      = "failed to get cultivation state"
	ErrMsgFailedToLockState     = "failed to get cultivation state with lock"
	ErrMsgFailedToCreateState   = "failed to create cultivation state"
	ErrMsgFailedToUpdateState   = "failed to update cultivation state"
	ErrMsgFailedToInsertLog     = "failed to insert session log"
	ErrMsgFailedToListLogs      = "failed to list session logs"
	ErrMsgFailedToCountLogs     = "failed to count session logs"
	ErrMsgFailedToResetDaily    = "failed to reset daily counters"
	ErrMsgFailedToEncodeContext = "failed to encode active context"
	ErrMsgFailedToDecodeContext = "failed to decode active context"
	ErrMsgFailedToGetProfile    = "failed to get element profile"
	ErrMsgFailedToUpsertProfile = "failed to upsert element profile"
)

// Cultivation queries
const (
	stateColumns = `user_id, current_exp, total_exp, realm, realm_name, is_active, active_started_at,
		active_context, today_minutes, total_days, streak_days, last_cultivated_at, created_at, updated_at`

	queryGetState = `SELECT ` + stateColumns + ` FROM cultivation_states WHERE user_id = $1`

	queryGetStateForUpdate = queryGetState + ` FOR UPDATE`

	queryInsertState = `
		INSERT INTO cultivation_states (user_id, current_exp, total_exp, realm, realm_name, is_active,
			active_started_at, active_context, today_minutes, total_days, streak_days, last_cultivated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING created_at, updated_at`

	queryUpdateState = `
		UPDATE cultivation_states SET
			current_exp = $2,
			total_exp = $3,
			realm = $4,
			realm_name = $5,
			is_active = $6,
			active_started_at = $7,
			active_context = $8,
			today_minutes = $9,
			total_days = $10,
			streak_days = $11,
			last_cultivated_at = $12,
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING updated_at`

	queryInsertLog = `
		INSERT INTO cultivation_session_logs (log_id, user_id, start_time, end_time, duration_minutes,
			exp_gained, bonus_applied, weather, temperature, city, annual_cycle, seasonal_qi, meridian,
			moon_phase, total_bonus, truncated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at`

	queryListLogs = `
		SELECT log_id, user_id, start_time, end_time, duration_minutes, exp_gained, bonus_applied::float8,
			weather, temperature, city, annual_cycle, seasonal_qi, meridian, moon_phase, total_bonus::float8,
			truncated, created_at
		FROM cultivation_session_logs
		WHERE user_id = $1
		ORDER BY end_time DESC, created_at DESC
		LIMIT $2 OFFSET $3`

	queryCountLogs = `SELECT COUNT(*) FROM cultivation_session_logs WHERE user_id = $1`

	queryResetDaily = `
		WITH rolled AS (
			UPDATE cultivation_states SET
				streak_days = CASE WHEN today_minutes > 0 THEN streak_days + 1 ELSE 0 END,
				total_days = CASE WHEN today_minutes > 0 THEN total_days + 1 ELSE total_days END,
				today_minutes = 0,
				updated_at = $1
			RETURNING streak_days, today_minutes
		)
		SELECT COUNT(*), COUNT(*) FILTER (WHERE streak_days > 0) FROM rolled`
)

// Element profile queries
const (
	queryGetProfile = `
		SELECT user_id, root_name, primary_element, root_bonus::float8
		FROM element_profiles WHERE user_id = $1`

	queryUpsertProfile = `
		INSERT INTO element_profiles (user_id, root_name, primary_element, root_bonus)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			root_name = EXCLUDED.root_name,
			primary_element = EXCLUDED.primary_element,
			root_bonus = EXCLUDED.root_bonus,
			updated_at = NOW()`
)
