// Package testutils provides shared test helpers: an in-memory Redis and
// scripted dice rollers.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/0xSalik/statsproject/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client bound
// to it. Both are shut down when the test ends. The server is returned so
// tests can inspect keys or fast forward TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		mr.Close()
	})

	return client, mr
}
