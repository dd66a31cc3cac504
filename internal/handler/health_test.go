package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{"Store reachable", nil, http.StatusOK, `"status":"ok"`},
		{"Store unreachable", assert.AnError, http.StatusServiceUnavailable, `"status":"unavailable"`},
		{"Store timeout", context.DeadlineExceeded, http.StatusServiceUnavailable, `"message":"store connection failed"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockPinger{}
			store.On("Ping", mock.Anything).Return(tt.pingErr)

			w := httptest.NewRecorder()
			HandleReadyz(store).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			store.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"dev"`)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}
