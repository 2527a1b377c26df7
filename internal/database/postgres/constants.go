package postgres

// Queries
const (
	queryGetValue = `SELECT value FROM kv_store WHERE key = $1`

	queryUpsertValue = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
)

// Error Messages
const (
	ErrMsgFailedToGetValue = "failed to get value"
	ErrMsgFailedToSetValue = "failed to set value"
)
