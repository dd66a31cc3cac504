package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/Cultivation_Go/internal/clock"
	"github.com/osse101/Cultivation_Go/internal/cultivation"
	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// StartRequest is the optional body of POST /cultivate/start
type StartRequest struct {
	City string `json:"city" validate:"max=100,cityname"`
}

// CultivationHandler serves the cultivation session endpoints
type CultivationHandler struct {
	svc   cultivation.Service
	clock clock.Clock
}

// NewCultivationHandler creates a new cultivation handler. clk defaults to the wall clock.
func NewCultivationHandler(svc cultivation.Service, clk clock.Clock) *CultivationHandler {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &CultivationHandler{svc: svc, clock: clk}
}

// Start begins a cultivation session
// @Summary Start cultivating
// @Description Begins a session and returns the temporal context it started under
// @Tags cultivation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StartRequest false "Optional city for the weather lookup"
// @Success 200 {object} domain.SessionContext
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 409 {object} ErrorResponse "Already cultivating"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cultivate/start [post]
func (h *CultivationHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req StartRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start cultivation"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("Start cultivation request received", "user_id", userID, "city", req.City)

	sc, err := h.svc.BeginSession(r.Context(), userID, req.City)
	if err != nil {
		respondServiceError(w, r, "Start cultivation", err)
		return
	}

	respondJSON(w, http.StatusOK, sc)
}

// End completes the active session and credits experience
// @Summary End cultivating
// @Description Ends the active session, applies bonuses and realm promotion
// @Tags cultivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.SessionResult
// @Failure 400 {object} ErrorResponse "Not cultivating"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "No cultivation record"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /cultivate/end [post]
func (h *CultivationHandler) End(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.EndSession(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "End cultivation", err)
		return
	}

	logger.FromContext(r.Context()).Info("Cultivation session ended",
		"user_id", userID,
		"minutes", res.DurationMinutes,
		"exp_gained", res.ExpGained,
		"level_up", res.LevelUp)

	respondJSON(w, http.StatusOK, res)
}

// Status returns the caller's cultivation snapshot
// @Summary Cultivation status
// @Tags cultivation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.CultivationStatus
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "No cultivation record"
// @Router /cultivate/status [get]
func (h *CultivationHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	status, err := h.svc.GetStatus(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get cultivation status", err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// History returns completed sessions, newest first
// @Summary Session history
// @Tags cultivation
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Entries per page (max 50)" default(10)
// @Success 200 {object} domain.SessionHistory
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /cultivate/history [get]
func (h *CultivationHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	page, ok := GetIntQueryParam(r, w, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := GetIntQueryParam(r, w, "pageSize", cultivation.DefaultHistoryPageSize)
	if !ok {
		return
	}

	history, err := h.svc.GetHistory(r.Context(), userID, page, pageSize)
	if err != nil {
		respondServiceError(w, r, "Get cultivation history", err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

// Almanac returns the temporal context for an instant
// @Summary Temporal almanac
// @Description Annual cycle, seasonal qi, meridian, lunar phase and weather for an instant
// @Tags cultivation
// @Produce json
// @Security BearerAuth
// @Param at query string false "RFC3339 instant, defaults to now"
// @Param city query string false "City for the weather lookup"
// @Success 200 {object} domain.TemporalContext
// @Failure 422 {object} ErrorResponse "Unusable instant"
// @Router /cultivate/almanac [get]
func (h *CultivationHandler) Almanac(w http.ResponseWriter, r *http.Request) {
	at := h.clock.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondServiceError(w, r, "Almanac", fmt.Errorf("%w: %s", domain.ErrTemporalCompute, ErrMsgInvalidAlmanacTime))
			return
		}
		at = parsed
	}
	city := GetOptionalQueryParam(r, "city", "")

	tc, err := h.svc.Almanac(r.Context(), at, city)
	if err != nil {
		respondServiceError(w, r, "Almanac", err)
		return
	}

	respondJSON(w, http.StatusOK, tc)
}
