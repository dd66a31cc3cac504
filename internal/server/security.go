package server

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Cultivation_Go/internal/auth"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// TokenVerifier resolves a bearer token to a user id
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware requires a valid bearer token and stores the user id in the request context
func AuthMiddleware(tokens TokenVerifier, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r)
			userID, err := tokens.Verify(token)
			if err != nil {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_token", token != "",
					"ip", ip,
					"error", err)

				writeError(w, http.StatusUnauthorized, CodeUnauthenticated, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks failed logins and request rate per IP over a rolling window
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time
	now              func() time.Time
}

// NewSuspiciousActivityDetector creates a detector; now defaults to time.Now
func NewSuspiciousActivityDetector(now func() time.Time) *SuspiciousActivityDetector {
	if now == nil {
		now = time.Now
	}
	return &SuspiciousActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    now(),
		now:              now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] >= failedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", s.failedAuthByIP[ip])
	}
}

// RecordRequest records a request and returns false once the IP exceeds the window budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCountsIfNeeded()
	s.requestCountByIP[ip]++

	if s.requestCountByIP[ip] > maxRequestsPerWindow {
		if s.requestCountByIP[ip]%highRateLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", s.requestCountByIP[ip])
		}
		return false
	}
	return true
}

// FailedAuthCount returns failures recorded for ip in the current window
func (s *SuspiciousActivityDetector) FailedAuthCount(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAuthByIP[ip]
}

// resetCountsIfNeeded clears counters once the window has passed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) resetCountsIfNeeded() {
	if s.now().Sub(s.lastResetTime) > detectorWindow {
		s.requestCountByIP = make(map[string]int)
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = s.now()
	}
}

// RateLimitMiddleware rejects clients that exceed the detector's request budget
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				writeError(w, http.StatusTooManyRequests, CodeTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only honored when the direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError mirrors the handler package's error envelope for middleware rejections
func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorEnvelope
	body.Error.Code = code
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
