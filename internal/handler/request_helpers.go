package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RecipeBox_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and validates its tags.
// On failure the response has already been written and the handler should return.
//
// Example usage:
//
//	var req ToggleFavoriteRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Toggle favorite"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	if err := decodeJSON(w, r, req, actionName); err != nil {
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// decodeJSON decodes the request body into v, writing a 400 or 413 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// GetQueryParam retrieves a required query parameter.
// If it is missing the response has already been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIndexParam parses the {index} route parameter.
// Range checks are left to the service; this only rejects non-numbers.
func getIndexParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, ParamIndex))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIndex)
		return 0, false
	}
	return index, true
}
