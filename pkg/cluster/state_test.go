package cluster

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateBus_SetGetDelete(t *testing.T) {
	rdb := newTestRedis(t)
	bus := NewStateBus(rdb, testConfig("node-a"))
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, bus.Set(ctx, "agents:alpha", payload{Name: "alpha", Count: 3}, 0))

	var got payload
	found, err := bus.Get(ctx, "agents:alpha", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{Name: "alpha", Count: 3}, got)

	exists, err := bus.Exists(ctx, "agents:alpha")
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := bus.Delete(ctx, "agents:alpha")
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err = bus.Get(ctx, "agents:alpha", &got)
	require.NoError(t, err)
	assert.False(t, found, "deleted key reads as absent")

	deleted, err = bus.Delete(ctx, "agents:alpha")
	require.NoError(t, err)
	assert.False(t, deleted, "deleting an absent key reports false")
}

func TestStateBus_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	bus := NewStateBus(rdb, testConfig("node-a"))
	ctx := context.Background()

	require.NoError(t, bus.Set(ctx, "ephemeral", "v", 5*time.Second))

	var got string
	found, err := bus.Get(ctx, "ephemeral", &got)
	require.NoError(t, err)
	require.True(t, found)

	mr.FastForward(6 * time.Second)

	found, err = bus.Get(ctx, "ephemeral", &got)
	require.NoError(t, err)
	assert.False(t, found, "expired key reads as absent")
}

func TestStateBus_KeysAndGetMany(t *testing.T) {
	rdb := newTestRedis(t)
	bus := NewStateBus(rdb, testConfig("node-a"))
	ctx := context.Background()

	require.NoError(t, bus.SetMany(ctx, map[string]any{
		"node:a": 1,
		"node:b": 2,
		"job:x":  3,
	}, 0))

	keys, err := bus.Keys(ctx, "node:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"node:a", "node:b"}, keys)

	values, err := bus.GetMany(ctx, []string{"node:a", "node:b", "node:missing"})
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.JSONEq(t, "1", string(values["node:a"]))
	assert.JSONEq(t, "2", string(values["node:b"]))
	assert.NotContains(t, values, "node:missing")
}

func TestStateBus_ChangeNotificationSuppressesSelfEcho(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	writer := NewStateBus(rdb, testConfig("node-a"))
	observer := NewStateBus(rdb, testConfig("node-b"))

	writer.Start(ctx)
	defer writer.Stop()
	observer.Start(ctx)
	defer observer.Stop()

	writerEvents, unsubWriter := writer.Subscribe()
	defer unsubWriter()
	observerEvents, unsubObserver := observer.Subscribe()
	defer unsubObserver()

	// Let both listener loops establish their subscriptions.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, writer.Set(ctx, "shared", map[string]any{"v": 1}, 0))

	select {
	case ev := <-observerEvents:
		assert.Equal(t, ChangeSet, ev.Type)
		assert.Equal(t, "shared", ev.Key)
		assert.Equal(t, "node-a", ev.SourceInstance)
		assert.JSONEq(t, `{"v":1}`, string(ev.Value))
	case <-time.After(3 * time.Second):
		t.Fatal("observer did not receive the change event")
	}

	select {
	case ev := <-writerEvents:
		t.Fatalf("writer received its own change event: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}

	_, err := writer.Delete(ctx, "shared")
	require.NoError(t, err)

	select {
	case ev := <-observerEvents:
		assert.Equal(t, ChangeDelete, ev.Type)
		assert.Equal(t, "shared", ev.Key)
		assert.Empty(t, []byte(ev.Value))
	case <-time.After(3 * time.Second):
		t.Fatal("observer did not receive the delete event")
	}
}

func TestStateBus_GetManyEmpty(t *testing.T) {
	rdb := newTestRedis(t)
	bus := NewStateBus(rdb, testConfig("node-a"))

	values, err := bus.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]json.RawMessage{}, values)
}
