package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Custom recipe errors
	ErrMsgValidation      = "validation failed"
	ErrMsgIndexOutOfRange = "index out of range"

	// Favorite errors
	ErrMsgInvalidFavorite = "invalid favorite"

	// Storage errors
	ErrMsgStorage = "storage error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrRecipeNotFound is returned when a catalog or custom recipe lookup misses
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// ErrValidation is returned when a recipe form is missing required fields
	ErrValidation = errors.New(ErrMsgValidation)

	// ErrIndexOutOfRange is returned for positional edits or deletes past the end of the sequence
	ErrIndexOutOfRange = errors.New(ErrMsgIndexOutOfRange)

	// ErrInvalidFavorite is returned for entries without a kind, payload or identity
	ErrInvalidFavorite = errors.New(ErrMsgInvalidFavorite)

	// ErrStorage is returned when the durable store could not be read or written
	ErrStorage = errors.New(ErrMsgStorage)

	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
