package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// Machine-readable error codes returned in the error envelope.
// Clients branch on these; the message is for humans.
const (
	CodeAlreadyCultivating    = "ALREADY_CULTIVATING"
	CodeNotCultivating        = "NOT_CULTIVATING"
	CodeCultivationNotFound   = "CULTIVATION_NOT_FOUND"
	CodeTemporalComputeFailed = "TEMPORAL_COMPUTE_FAILED"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeMethodNotAllowed      = "METHOD_NOT_ALLOWED"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidAlmanacTime    = "at must be an RFC3339 timestamp"
	ErrMsgMissingIdentity       = "Authentication required"
)

// User-facing messages derived from domain errors
const (
	ErrMsgAlreadyCultivatingError  = "You are already cultivating. End the current session first."
	ErrMsgNotCultivatingError      = "You are not cultivating right now."
	ErrMsgCultivationNotFoundError = "No cultivation record exists yet. Start a session first."
	ErrMsgTemporalComputeError     = "The almanac could not be computed for that moment."
	ErrMsgInvalidInputError        = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError          = "Authentication failed. Please check your token."
	ErrMsgGenericServerError       = "Something went wrong"
)

// mapServiceError converts a service error into a status code, error code and user message.
// Unknown errors collapse to INTERNAL_ERROR.
func mapServiceError(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, CodeInternalError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrAlreadyCultivating):
		return http.StatusConflict, CodeAlreadyCultivating, ErrMsgAlreadyCultivatingError
	case errors.Is(err, domain.ErrNotCultivating):
		return http.StatusBadRequest, CodeNotCultivating, ErrMsgNotCultivatingError
	case errors.Is(err, domain.ErrCultivationNotFound):
		return http.StatusNotFound, CodeCultivationNotFound, ErrMsgCultivationNotFoundError
	case errors.Is(err, domain.ErrTemporalCompute):
		return http.StatusUnprocessableEntity, CodeTemporalComputeFailed, ErrMsgTemporalComputeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, CodeUnauthenticated, ErrMsgAuthFailedError
	default:
		return http.StatusInternalServerError, CodeInternalError, ErrMsgGenericServerError
	}
}

// respondServiceError logs err and writes the mapped error envelope.
// Expected domain outcomes log at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, code, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "code", code)
	}
	respondError(w, status, code, msg)
}
