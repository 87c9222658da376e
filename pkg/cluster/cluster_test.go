package cluster

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// newTestRedis starts an in-process Redis and returns a connected client.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func testConfig(instanceID string) Config {
	return Config{
		Enabled:           true,
		Prefix:            "testclst",
		InstanceID:        instanceID,
		LeaseTTL:          2 * time.Second,
		HeartbeatInterval: 100 * time.Millisecond,
		HeartbeatTimeout:  500 * time.Millisecond,
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("HA_ENABLED", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("CLUSTER_PREFIX", "")
	t.Setenv("INSTANCE_ID", "pod-7")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	require.True(t, cfg.Enabled)
	require.Equal(t, "parallax", cfg.Prefix)
	require.Equal(t, "pod-7", cfg.InstanceID)
	require.Equal(t, DefaultLeaseTTL, cfg.LeaseTTL)
}

func TestLoadConfigFromEnv_InvalidLeaseTTL(t *testing.T) {
	t.Setenv("LEASE_TTL_SECONDS", "zero")

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
}
