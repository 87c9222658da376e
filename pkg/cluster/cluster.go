// Package cluster provides multi-replica coordination: leader election,
// fenced distributed locks, shared state with change notification, and
// per-node liveness. All primitives are backed by Redis so that every
// replica observes the same lease, lock, and state-key space.
package cluster

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Default coordination timings.
const (
	DefaultLeaseTTL          = 10 * time.Second
	DefaultCampaignInterval  = 1 * time.Second
	DefaultLockTTL           = 30 * time.Second
	DefaultHeartbeatInterval = 5 * time.Second
	DefaultHeartbeatTimeout  = 15 * time.Second
)

// Config holds cluster coordination settings, loaded from the environment.
type Config struct {
	Enabled    bool
	RedisURL   string
	Prefix     string
	InstanceID string

	LeaseTTL          time.Duration
	HeartbeatInterval time.Duration
	HeartbeatTimeout  time.Duration
}

// LoadConfigFromEnv loads cluster configuration from environment variables.
// INSTANCE_ID falls back to HOSTNAME, then to a local default — the same
// resolution order used for pod identity elsewhere in the process.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Enabled:           getEnvOrDefault("HA_ENABLED", "true") == "true",
		RedisURL:          getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		Prefix:            getEnvOrDefault("CLUSTER_PREFIX", "parallax"),
		InstanceID:        resolveInstanceID(),
		LeaseTTL:          DefaultLeaseTTL,
		HeartbeatInterval: DefaultHeartbeatInterval,
		HeartbeatTimeout:  DefaultHeartbeatTimeout,
	}

	if v := os.Getenv("LEASE_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid LEASE_TTL_SECONDS: %q", v)
		}
		cfg.LeaseTTL = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("HEARTBEAT_INTERVAL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid HEARTBEAT_INTERVAL_SECONDS: %q", v)
		}
		cfg.HeartbeatInterval = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("HEARTBEAT_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid HEARTBEAT_TIMEOUT_SECONDS: %q", v)
		}
		cfg.HeartbeatTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

// NewRedisClient creates a Redis client from the configured URL.
func NewRedisClient(cfg Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func resolveInstanceID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
