package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Cultivation_Go/internal/auth"
	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/logger"
	"github.com/osse101/Cultivation_Go/mocks"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T, svc *mocks.MockCultivationService) (http.Handler, string) {
	t.Helper()
	tokens := auth.NewTokenManager(testSecret, "cultivation", nil)
	token, err := tokens.Issue("user-7", time.Hour)
	require.NoError(t, err)

	r := NewRouter(Options{
		Version:     "1.2.3",
		Tokens:      tokens,
		Cultivation: svc,
		Store:       okPinger{},
	}, NewSuspiciousActivityDetector(nil))
	return r, token
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewMockCultivationService(t))

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)
}

func TestRouter_CultivateRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t, mocks.NewMockCultivationService(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cultivate/start", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_StartThenEnd(t *testing.T) {
	svc := mocks.NewMockCultivationService(t)
	started := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.On("BeginSession", mock.Anything, "user-7", "Lhasa").
		Return(&domain.SessionContext{IsActive: true, ActiveStartedAt: started}, nil).Once()
	svc.On("EndSession", mock.Anything, "user-7").
		Return(&domain.SessionResult{DurationMinutes: 30, BaseExp: 300, BonusApplied: 1.45, ExpGained: 435}, nil).Once()

	r, token := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cultivate/start", strings.NewReader(`{"city":"Lhasa"}`))
	req.Header.Set(HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodPost, "/api/v1/cultivate/end", nil)
	req.Header.Set(HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.SessionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(435), res.ExpGained)
}

func TestRouter_UnknownMethod(t *testing.T) {
	r, token := newTestRouter(t, mocks.NewMockCultivationService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cultivate/start", nil)
	req.Header.Set(HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLoggingMiddleware_RedactsAuthorization(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	logger.InitLoggerWithWriter(logger.Config{Level: "debug", Format: "text"}, &buf)

	h := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cultivate/status", nil)
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "status=418")
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"caller supplied", "abc-123", true},
		{"missing", "", false},
		{"too long", strings.Repeat("x", requestIDMaxLength+1), false},
		{"control characters", "abc\x01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			got := requestID(req)
			if tt.reused {
				assert.Equal(t, tt.header, got)
			} else {
				assert.Len(t, got, 36)
			}
		})
	}
}
