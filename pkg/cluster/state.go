package cluster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Change event types published on the state sync channel.
const (
	ChangeSet    = "set"
	ChangeDelete = "delete"
)

// ChangeEvent describes one state mutation, fanned out to every replica.
type ChangeEvent struct {
	Type           string          `json:"type"`
	Key            string          `json:"key"`
	Value          json.RawMessage `json:"value,omitempty"`
	SourceInstance string          `json:"sourceInstance"`
	Timestamp      time.Time       `json:"timestamp"`
}

// StateBus is a shared key/value store with optional TTL and change
// notification. Values are serialized as JSON; keys live under
// "<prefix>:state:<key>" with ":" as the logical namespace delimiter.
//
// Every Set/Delete publishes a ChangeEvent on "<prefix>:sync:state".
// Local subscribers never receive their own instance's changes
// (self-echo suppression). Expiration synthesizes no event — consumers
// observe absence on Get.
type StateBus struct {
	rdb        *redis.Client
	prefix     string
	channel    string
	instanceID string

	mu     sync.RWMutex
	subs   map[int]chan ChangeEvent
	subSeq int

	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewStateBus creates a state bus over the given Redis client.
func NewStateBus(rdb *redis.Client, cfg Config) *StateBus {
	return &StateBus{
		rdb:        rdb,
		prefix:     cfg.Prefix,
		channel:    cfg.Prefix + ":sync:state",
		instanceID: cfg.InstanceID,
		subs:       make(map[int]chan ChangeEvent),
	}
}

func (b *StateBus) stateKey(key string) string {
	return b.prefix + ":state:" + key
}

// Start begins the change-listener loop that feeds local subscribers.
func (b *StateBus) Start(ctx context.Context) {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	loopCtx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	b.mu.Unlock()

	go func() {
		defer close(b.done)
		b.listenLoop(loopCtx)
	}()
	slog.Info("State bus started", "instance_id", b.instanceID, "channel", b.channel)
	_ = ctx
}

// Stop terminates the change-listener loop.
func (b *StateBus) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.running = false
	cancel := b.cancel
	done := b.done
	b.mu.Unlock()

	cancel()
	<-done
	slog.Info("State bus stopped", "instance_id", b.instanceID)
}

// Set stores value (JSON-serialized) under key with an optional TTL
// (ttl <= 0 means no expiry), then publishes the change.
func (b *StateBus) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal state value for %q: %w", key, err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := b.rdb.Set(ctx, b.stateKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set state key %q: %w", key, err)
	}
	b.publishChange(ctx, ChangeEvent{
		Type:           ChangeSet,
		Key:            key,
		Value:          data,
		SourceInstance: b.instanceID,
		Timestamp:      time.Now().UTC(),
	})
	return nil
}

// Get reads the value under key into dest. Returns false when the key is
// absent (or expired).
func (b *StateBus) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := b.rdb.Get(ctx, b.stateKey(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get state key %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal state key %q: %w", key, err)
	}
	return true, nil
}

// Delete removes key. Returns true if the key existed.
func (b *StateBus) Delete(ctx context.Context, key string) (bool, error) {
	n, err := b.rdb.Del(ctx, b.stateKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete state key %q: %w", key, err)
	}
	if n > 0 {
		b.publishChange(ctx, ChangeEvent{
			Type:           ChangeDelete,
			Key:            key,
			SourceInstance: b.instanceID,
			Timestamp:      time.Now().UTC(),
		})
	}
	return n > 0, nil
}

// Exists reports whether key is present.
func (b *StateBus) Exists(ctx context.Context, key string) (bool, error) {
	n, err := b.rdb.Exists(ctx, b.stateKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check state key %q: %w", key, err)
	}
	return n > 0, nil
}

// Keys returns all logical keys matching the glob pattern ("*" wildcard,
// ":" namespace delimiter). The state prefix is stripped from results.
func (b *StateBus) Keys(ctx context.Context, pattern string) ([]string, error) {
	match := b.stateKey(pattern)
	stripLen := len(b.stateKey(""))

	var keys []string
	var cursor uint64
	for {
		page, next, err := b.rdb.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan state keys %q: %w", pattern, err)
		}
		for _, k := range page {
			keys = append(keys, k[stripLen:])
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// GetMany reads multiple keys in one round trip. Absent keys are omitted
// from the result map.
func (b *StateBus) GetMany(ctx context.Context, keys []string) (map[string]json.RawMessage, error) {
	if len(keys) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = b.stateKey(k)
	}
	vals, err := b.rdb.MGet(ctx, full...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mget state keys: %w", err)
	}
	result := make(map[string]json.RawMessage, len(keys))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		result[keys[i]] = json.RawMessage(s)
	}
	return result, nil
}

// SetMany writes multiple keys pipelined, each with the same TTL, then
// publishes one change per key.
func (b *StateBus) SetMany(ctx context.Context, values map[string]any, ttl time.Duration) error {
	if len(values) == 0 {
		return nil
	}
	if ttl < 0 {
		ttl = 0
	}

	encoded := make(map[string]json.RawMessage, len(values))
	pipe := b.rdb.Pipeline()
	for k, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal state value for %q: %w", k, err)
		}
		encoded[k] = data
		pipe.Set(ctx, b.stateKey(k), []byte(data), ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set state keys: %w", err)
	}

	now := time.Now().UTC()
	for k, data := range encoded {
		b.publishChange(ctx, ChangeEvent{
			Type:           ChangeSet,
			Key:            k,
			Value:          data,
			SourceInstance: b.instanceID,
			Timestamp:      now,
		})
	}
	return nil
}

// Subscribe registers a local change subscriber. Events from this instance
// are suppressed. Slow subscribers drop events rather than blocking the
// listener. The returned function unregisters the subscriber.
func (b *StateBus) Subscribe() (<-chan ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.subSeq
	b.subSeq++
	ch := make(chan ChangeEvent, 64)
	b.subs[id] = ch
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

func (b *StateBus) publishChange(ctx context.Context, ev ChangeEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to marshal state change event", "key", ev.Key, "error", err)
		return
	}
	if err := b.rdb.Publish(ctx, b.channel, data).Err(); err != nil {
		slog.Warn("Failed to publish state change", "key", ev.Key, "error", err)
	}
}

// listenLoop receives change events from the sync channel and fans them out
// to local subscribers, dropping self-originated events. On subscription
// failure the loop reconnects after a 1 s backoff.
func (b *StateBus) listenLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		sub := b.rdb.Subscribe(ctx, b.channel)
		msgs := sub.Channel()

	receive:
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case msg, ok := <-msgs:
				if !ok {
					break receive
				}
				var ev ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					slog.Warn("Malformed state change event", "error", err)
					continue
				}
				if ev.SourceInstance == b.instanceID {
					continue // self-echo suppression
				}
				b.fanOut(ev)
			}
		}

		_ = sub.Close()
		slog.Warn("State change subscription lost, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (b *StateBus) fanOut(ev ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
