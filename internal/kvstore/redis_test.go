package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/RecipeBox_Go/internal/kvstore"
)

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping redis container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	s, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{Addr: endpoint, Prefix: "test:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
	assert.NoError(t, s.Ping(ctx))

	s2, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{Addr: endpoint, Prefix: "other:"})
	require.NoError(t, err)
	defer s2.Close()
	_, ok, err := s2.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok, "prefixes isolate keys")
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
