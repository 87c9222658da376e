package cluster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElector_SingleLeader(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	a := NewElector(rdb, testConfig("node-a"))
	a.Start(ctx)
	defer a.Stop()

	require.True(t, a.WaitForLeadership(5*time.Second), "first elector should win the open lease")
	assert.True(t, a.IsLeader())
	assert.Equal(t, "node-a", a.LeaderID())

	b := NewElector(rdb, testConfig("node-b"))
	b.Start(ctx)
	defer b.Stop()

	assert.False(t, b.WaitForLeadership(2*time.Second), "second elector must not win while the lease is held")
	assert.False(t, b.IsLeader())
	assert.True(t, a.IsLeader(), "holder keeps leadership across renewals")
}

func TestElector_FailoverOnResign(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	a := NewElector(rdb, testConfig("node-a"))
	a.Start(ctx)
	require.True(t, a.WaitForLeadership(5*time.Second))

	b := NewElector(rdb, testConfig("node-b"))
	b.Start(ctx)
	defer b.Stop()

	// Resign releases the lease immediately so the peer does not have to
	// wait out the TTL.
	a.Stop()

	require.True(t, b.WaitForLeadership(5*time.Second), "peer should take over after resignation")
	assert.True(t, b.IsLeader())
}

func TestElector_SubscribeObservesElection(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	e := NewElector(rdb, testConfig("node-a"))
	events, unsubscribe := e.Subscribe()
	defer unsubscribe()

	e.Start(ctx)
	defer e.Stop()

	require.True(t, e.WaitForLeadership(5*time.Second))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == EventElected {
				assert.Equal(t, "node-a", ev.LeaderID)
				return
			}
		case <-deadline:
			t.Fatal("no elected event observed")
		}
	}
}
