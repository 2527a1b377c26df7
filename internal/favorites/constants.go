package favorites

// Log messages
const (
	LogMsgLoadFailed       = "Failed to load favorites, starting empty"
	LogMsgLoadMalformed    = "Stored favorites are malformed, starting empty"
	LogMsgSkippedEntry     = "Skipping unreadable favorite entry"
	LogMsgSkippedDuplicate = "Skipping duplicate favorite entry"
	LogMsgLoaded           = "Favorites loaded"
	LogMsgToggled          = "Favorite toggled"
	LogMsgWriteFailed      = "Failed to persist favorites"
	LogMsgPublishFailed    = "Failed to publish favorites event"
)
