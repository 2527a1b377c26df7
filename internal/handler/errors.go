package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/RecipeBox_Go/internal/customrecipe"
	"github.com/osse101/RecipeBox_Go/internal/domain"
)

// Generic HTTP error messages for client responses.
// These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidIndex          = "Invalid recipe index"
	ErrMsgRequestTooLarge       = "Request body too large"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgFillAllFields       = "Please fill in all fields"
	ErrMsgIndexOutOfRange     = "That recipe no longer exists at this position"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgInvalidFavorite     = "Invalid favorite"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgSaveRecipeFailed    = "Failed to save recipe. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a message safe to show users
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrMsgFillAllFields
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusBadRequest, ErrMsgIndexOutOfRange
	case errors.Is(err, domain.ErrInvalidFavorite):
		return http.StatusBadRequest, ErrMsgInvalidFavorite
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrStorage):
		return http.StatusInternalServerError, ErrMsgSaveRecipeFailed
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// validationFields extracts per-field messages from a form validation error
func validationFields(err error) (map[string]string, bool) {
	var verr *customrecipe.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
