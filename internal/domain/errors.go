package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Cultivation session errors
	ErrMsgAlreadyCultivating   = "already cultivating"
	ErrMsgNotCultivating       = "not cultivating"
	ErrMsgCultivationNotFound  = "cultivation record not found"
	ErrMsgStateExists          = "cultivation record already exists"
	ErrMsgTemporalCompute      = "temporal context could not be computed"
	ErrMsgElementProfileAbsent = "element profile not found"

	// Identity errors
	ErrMsgUnauthenticated = "unauthenticated"
	ErrMsgInvalidToken    = "invalid token"

	// Database/System errors
	ErrMsgTxClosed           = "tx is closed"
	ErrMsgDatabaseError      = "database error"
	ErrMsgWeatherUnavailable = "weather unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

var (
	// ErrAlreadyCultivating is returned when a session is started while one is already active
	ErrAlreadyCultivating = errors.New(ErrMsgAlreadyCultivating)
	// ErrNotCultivating is returned when a session is ended but none is active
	ErrNotCultivating = errors.New(ErrMsgNotCultivating)
	// ErrCultivationNotFound is returned when no cultivation record exists for the user
	ErrCultivationNotFound = errors.New(ErrMsgCultivationNotFound)
	// ErrStateExists is returned by CreateState when the user already has a record
	ErrStateExists = errors.New(ErrMsgStateExists)
	// ErrTemporalCompute is returned when a temporal context is requested for an unusable instant
	ErrTemporalCompute = errors.New(ErrMsgTemporalCompute)
	// ErrElementProfileNotFound is returned when a user has no element profile
	ErrElementProfileNotFound = errors.New(ErrMsgElementProfileAbsent)

	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
	ErrInvalidToken    = errors.New(ErrMsgInvalidToken)

	ErrDatabaseError      = errors.New(ErrMsgDatabaseError)
	ErrWeatherUnavailable = errors.New(ErrMsgWeatherUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
