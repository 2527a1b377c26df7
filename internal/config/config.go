package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/RecipeBox_Go/internal/kvstore"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	// Storage
	StorageBackend string
	StoragePath    string
	CacheSize      int
	CacheTTL       time.Duration

	// Redis backend
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// Postgres backend
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// HTTP
	CORSAllowedOrigins []string
	MaxRequestBytes    int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, ""),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),

		StorageBackend: strings.ToLower(getEnv(EnvStorageBackend, kvstore.BackendFile)),
		StoragePath:    getEnv(EnvStoragePath, DefaultStoragePath),
		CacheTTL:       getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),

		RedisAddr:      getEnv(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword:  getEnv(EnvRedisPassword, ""),
		RedisKeyPrefix: getEnv(EnvRedisKeyPrefix, DefaultRedisKeyPrefix),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		CORSAllowedOrigins: getEnvAsList(EnvCORSAllowedOrigins, DefaultCORSOrigins),
		MaxRequestBytes:    int64(getEnvAsInt(EnvMaxRequestBytes, DefaultMaxRequestBytes)),
	}

	var err error
	if cfg.Port, err = parseIntEnv(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = parseIntEnv(EnvRedisDB, 0); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = parseIntEnv(EnvCacheSize, DefaultCacheSize); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the application cannot start with
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid %s value: %d", EnvPort, c.Port)
	}

	switch c.StorageBackend {
	case kvstore.BackendMemory, kvstore.BackendRedis, kvstore.BackendPostgres:
	case kvstore.BackendFile:
		if c.StoragePath == "" {
			return fmt.Errorf("%s must be set for the %s backend", EnvStoragePath, kvstore.BackendFile)
		}
	default:
		return fmt.Errorf("unknown %s %q", EnvStorageBackend, c.StorageBackend)
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("invalid %s value: %d", EnvCacheSize, c.CacheSize)
	}
	if c.CacheSize > 0 && c.CacheTTL <= 0 {
		return fmt.Errorf("invalid %s value: %s", EnvCacheTTL, c.CacheTTL)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("invalid %s value: %d", EnvRedisDB, c.RedisDB)
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("invalid %s value: %d", EnvDBMaxConns, c.DBMaxConns)
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("invalid %s value: %d", EnvMaxRequestBytes, c.MaxRequestBytes)
	}

	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration environment variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping empty items
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseIntEnv is the strict variant of getEnvAsInt: a set but unparsable value is an error
func parseIntEnv(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}
