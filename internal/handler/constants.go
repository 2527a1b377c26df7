package handler

import "time"

// Content types
const (
	ContentTypeJSON = "application/json"
)

// Route and query parameters
const (
	ParamID       = "id"
	ParamIndex    = "index"
	QueryCategory = "category"
	QuerySearch   = "q"
	QueryKind     = "kind"
)

// Health settings
const (
	ReadinessTimeout   = 2 * time.Second
	HealthStatusOK     = "ok"
	HealthStatusDown   = "unavailable"
	HealthMsgStoreDown = "storage backend unreachable"
)

// Success messages
const (
	MsgFavoritesReloaded     = "Favorites reloaded"
	MsgCustomRecipesReloaded = "Custom recipes reloaded"
	MsgCustomRecipeDeleted   = "Recipe deleted"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgReadinessFailed = "Readiness check failed"
)
