package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/RecipeBox_Go/internal/kvstore"
)

// RequiredEnvVarsByBackend lists the environment variables a storage backend cannot run without
var RequiredEnvVarsByBackend = map[string][]string{
	kvstore.BackendRedis:    {EnvRedisAddr},
	kvstore.BackendPostgres: {EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName},
}

// ValidateEnv checks that the variables required by the selected backend are set
func ValidateEnv() error {
	backend := strings.ToLower(getEnv(EnvStorageBackend, kvstore.BackendFile))

	var missing []string
	for _, envVar := range RequiredEnvVarsByBackend[backend] {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s backend: %s", backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	backend := strings.ToLower(getEnv(EnvStorageBackend, kvstore.BackendFile))
	prod := getEnv(EnvEnvironment, DefaultEnvironment) == EnvironmentProd

	if backend == kvstore.BackendPostgres && os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if backend == kvstore.BackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND is memory - favorites and custom recipes are lost on restart")
	}

	if prod && getEnv(EnvCORSAllowedOrigins, DefaultCORSOrigins) == DefaultCORSOrigins {
		warnings = append(warnings, "CORS_ALLOWED_ORIGINS allows any origin in production")
	}

	return warnings, nil
}
