package kvstore

import (
	"os"
	"time"
)

// Backend names
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Operation names used in metrics
const (
	OpGet  = "get"
	OpSet  = "set"
	OpPing = "ping"
)

// File backend settings
const (
	// FilePermissions is the mode of the storage document
	FilePermissions os.FileMode = 0o600

	// DirPermissions is the mode of directories created for the storage document
	DirPermissions os.FileMode = 0o755

	// TempFilePattern is the pattern for the temporary file written before rename
	TempFilePattern = ".storage-*.tmp"
)

// Cache defaults
const (
	// DefaultCacheSize is the number of keys kept by CachedStore
	DefaultCacheSize = 64

	// DefaultCacheTTL is how long a cached value is trusted
	DefaultCacheTTL = 5 * time.Minute
)

// Error messages
const (
	ErrMsgRead      = "storage read failed"
	ErrMsgWrite     = "storage write failed"
	ErrMsgMalformed = "stored value is malformed"
	ErrMsgClosed    = "storage is closed"
)

// Log messages
const (
	LogMsgRedisConnected = "Connected to redis"
	LogMsgFileStoreOpen  = "Opened file storage"
)
