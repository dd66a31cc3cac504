package server

import "time"

// Error codes and messages for middleware responses
const (
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrMsgUnauthorized    = "A valid bearer token is required"
	ErrMsgTooManyRequests = "Too many requests. Please try again later."
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderRequestID      = "X-Request-ID"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Limits and thresholds
const (
	detectorWindow       = 5 * time.Minute
	failedAuthAlertCount = 5
	maxRequestsPerWindow = 1000
	highRateLogEvery     = 100
	maxRequestBodyBytes  = 64 << 10
	readHeaderTimeout    = 5 * time.Second
	requestIDMaxLength   = 64
)

// Paths that skip request logging
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
