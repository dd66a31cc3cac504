package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/Cultivation_Go/internal/auth"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// An empty body decodes to the zero value, so optional-only requests may omit it.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req StartRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Start cultivation"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
			respondError(w, http.StatusBadRequest, CodeInvalidInput, ErrMsgInvalidRequest)
			return err
		}
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Code:    CodeInvalidInput,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		}})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntQueryParam parses an optional integer query parameter.
// If ok is false, a 400 has already been written.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid integer query parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return n, true
}

// requireUserID returns the authenticated user id set by the auth middleware.
// If ok is false, a 401 has already been written.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, CodeUnauthenticated, ErrMsgMissingIdentity)
		return "", false
	}
	return userID, true
}
