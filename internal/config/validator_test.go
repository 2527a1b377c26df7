package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_FileBackendNeedsNothing(t *testing.T) {
	clearEnvVars(t)

	require.NoError(t, ValidateEnv())
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvStorageBackend, "postgres")
	t.Setenv(EnvDBUser, "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables for postgres backend")
	assert.Contains(t, err.Error(), EnvDBPassword)
	assert.NotContains(t, err.Error(), EnvDBUser+",")
}

func TestValidateEnv_Redis(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvStorageBackend, "redis")

	require.Error(t, ValidateEnv())

	t.Setenv(EnvRedisAddr, "localhost:6379")
	require.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvStorageBackend, "postgres")
	t.Setenv(EnvEnvironment, EnvironmentProd)
	t.Setenv(EnvDBUser, "user")
	t.Setenv(EnvDBPassword, ExampleDBPassword)
	t.Setenv(EnvDBHost, "localhost")
	t.Setenv(EnvDBPort, "5432")
	t.Setenv(EnvDBName, "db")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], EnvDBPassword)
	assert.Contains(t, warnings[1], EnvCORSAllowedOrigins)
}

func TestValidateEnvWithWarnings_MemoryBackend(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvStorageBackend, "memory")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "lost on restart")
}
