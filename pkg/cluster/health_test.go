package cluster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitor_HeartbeatAndNodes(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()
	cfg := testConfig("node-a")

	elector := NewElector(rdb, cfg)
	elector.Start(ctx)
	defer elector.Stop()
	require.True(t, elector.WaitForLeadership(5*time.Second))

	state := NewStateBus(rdb, cfg)
	monitor := NewHealthMonitor(state, elector, cfg, 8000)
	monitor.Start(ctx)
	defer monitor.Stop()

	// First heartbeat is written synchronously on start.
	nodes, err := monitor.Nodes(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "node-a", nodes[0].InstanceID)
	assert.Equal(t, NodeHealthy, nodes[0].Status)
	assert.Equal(t, 8000, nodes[0].Port)
	assert.True(t, nodes[0].IsLeader)

	ok, err := monitor.HasQuorum(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = monitor.HasQuorum(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok, "quorum of 2 needs two healthy nodes")
}

func TestHealthMonitor_StaleNodeUnhealthy(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()
	cfg := testConfig("node-a")

	elector := NewElector(rdb, cfg)
	state := NewStateBus(rdb, cfg)
	monitor := NewHealthMonitor(state, elector, cfg, 8000)

	// A peer whose heartbeat is older than the timeout classifies unhealthy.
	stale := NodeInfo{
		InstanceID:    "node-b",
		LastHeartbeat: time.Now().Add(-cfg.HeartbeatTimeout - time.Second),
		Status:        NodeHealthy,
	}
	require.NoError(t, state.Set(ctx, "node:node-b", stale, 0))

	nodes, err := monitor.Nodes(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, NodeUnhealthy, nodes[0].Status)
}

func TestHealthMonitor_StopRemovesRecord(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()
	cfg := testConfig("node-a")

	elector := NewElector(rdb, cfg)
	state := NewStateBus(rdb, cfg)
	monitor := NewHealthMonitor(state, elector, cfg, 8000)
	monitor.Start(ctx)

	exists, err := state.Exists(ctx, "node:node-a")
	require.NoError(t, err)
	require.True(t, exists)

	monitor.Stop()

	exists, err = state.Exists(ctx, "node:node-a")
	require.NoError(t, err)
	assert.False(t, exists, "stop removes the node heartbeat")
}
