package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Cultivation_Go/internal/clock"
	"github.com/osse101/Cultivation_Go/internal/cultivation"
	"github.com/osse101/Cultivation_Go/internal/handler"
	"github.com/osse101/Cultivation_Go/internal/logger"
	"github.com/osse101/Cultivation_Go/internal/metrics"
)

// Options wires the server's dependencies
type Options struct {
	Port           int
	Version        string
	TrustedProxies []string
	Tokens         TokenVerifier
	Cultivation    cultivation.Service
	Store          handler.Pinger
	Clock          clock.Clock
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, NewSuspiciousActivityDetector(nil)),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree. Exposed so tests can drive it through httptest.
func NewRouter(opts Options, detector *SuspiciousActivityDetector) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	cultivationHandler := handler.NewCultivationHandler(opts.Cultivation, opts.Clock)
	r.Route("/api/v1/cultivate", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.Tokens, opts.TrustedProxies, detector))

		r.Post("/start", cultivationHandler.Start)
		r.Post("/end", cultivationHandler.End)
		r.Get("/status", cultivationHandler.Status)
		r.Get("/history", cultivationHandler.History)
		r.Get("/almanac", cultivationHandler.Almanac)
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestID reuses a caller-supplied X-Request-ID when it is short and printable
func requestID(r *http.Request) string {
	id := r.Header.Get(HeaderRequestID)
	if id == "" || len(id) > requestIDMaxLength {
		return logger.GenerateRequestID()
	}
	for _, c := range id {
		if c < 0x21 || c > 0x7e {
			return logger.GenerateRequestID()
		}
	}
	return id
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		id := requestID(r)
		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, id)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
