// Package testutils provides shared fixtures and Redis helpers for tests
package testutils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/charforge/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	return CreateTestRedisClientWithContext(t, nil)
}

// CreateTestRedisClientWithContext creates an in-memory Redis client with data population function
func CreateTestRedisClientWithContext(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) (redis.Client, func()) {
	mr := StartMiniredis(t, setupFunc)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, cleanup
}

// StartMiniredis runs a miniredis server that is closed with the test.
// Use it directly when the test needs to fast-forward TTLs.
func StartMiniredis(t *testing.T, setupFunc func(mr *miniredis.Miniredis)) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")
	t.Cleanup(mr.Close)

	// Allow test to populate Redis with initial data
	if setupFunc != nil {
		setupFunc(mr)
	}
	return mr
}

// FlushTestRedis removes every key from the client's database
func FlushTestRedis(ctx context.Context, client redis.Client) error {
	return client.FlushDB(ctx).Err()
}
