package config

import "time"

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvLogDir             = "LOG_DIR"
	EnvEnvironment        = "ENVIRONMENT"
	EnvVersion            = "VERSION"
	EnvStorageBackend     = "STORAGE_BACKEND"
	EnvStoragePath        = "STORAGE_PATH"
	EnvRedisAddr          = "REDIS_ADDR"
	EnvRedisPassword      = "REDIS_PASSWORD"
	EnvRedisDB            = "REDIS_DB"
	EnvRedisKeyPrefix     = "REDIS_KEY_PREFIX"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime  = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime  = "DB_MAX_CONN_LIFETIME"
	EnvCacheSize          = "CACHE_SIZE"
	EnvCacheTTL           = "CACHE_TTL"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvMaxRequestBytes    = "MAX_REQUEST_BYTES"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "" // environment profile decides
	DefaultLogFormat         = ""
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultStoragePath       = "data/storage.yaml"
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisKeyPrefix    = "recipebox:"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "recipebox"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultCacheSize         = 0
	DefaultCacheTTL          = 5 * time.Minute
	DefaultCORSOrigins       = "*"
	DefaultMaxRequestBytes   = 1 << 20
)

// Example values shipped in .env.example that should never reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	EnvironmentProd   = "prod"
)
