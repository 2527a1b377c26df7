package customrecipe

// Operation names used in metrics and logs
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Validation messages keyed by validator tag
const (
	ValidationMsgRequired = "This field is required"
	ValidationMsgMaxFmt   = "Must be at most %s characters"
	ValidationMsgInvalid  = "Invalid value"
)

// Log messages
const (
	LogMsgLoadFailed    = "Failed to load custom recipes, starting empty"
	LogMsgLoadMalformed = "Stored custom recipes are malformed, starting empty"
	LogMsgLoaded        = "Custom recipes loaded"
	LogMsgSaved         = "Custom recipe saved"
	LogMsgDeleted       = "Custom recipe deleted"
	LogMsgReadFailed    = "Failed to read custom recipes"
	LogMsgWriteFailed   = "Failed to persist custom recipes"
	LogMsgPublishFailed = "Failed to publish custom recipes event"
)
