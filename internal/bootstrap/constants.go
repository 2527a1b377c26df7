package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingRecipeBox   = "Starting RecipeBox"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// StorageConnectTimeout bounds connecting to and migrating a remote backend
	StorageConnectTimeout = 30 * time.Second
)

const (
	LogMsgStorageInitialized  = "Storage initialized"
	LogMsgStorageCacheEnabled = "Storage cache enabled"
	LogMsgMigrationsApplied   = "Database migrations applied"
	ErrMsgUnknownBackend      = "unknown storage backend"
	ErrMsgOpenFileStore       = "failed to open file store"
	ErrMsgConnectRedis        = "failed to connect to redis"
	ErrMsgConnectPostgres     = "failed to connect to postgres"
	ErrMsgMigratePostgres     = "failed to migrate postgres"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// =============================================================================
// Hydration
// =============================================================================

const (
	LogMsgHydratingStores = "Hydrating stores"
	LogMsgStoresHydrated  = "Stores hydrated"

	LogMsgHydrationInterrupted = "Hydration interrupted"
	ErrMsgHydrationInterrupted = "hydration interrupted"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStorageCloseFailed   = "Storage close failed"
)
