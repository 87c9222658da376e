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

// Leadership transition event types.
type LeadershipEventType string

const (
	EventElected       LeadershipEventType = "elected"
	EventDemoted       LeadershipEventType = "demoted"
	EventLeaderChanged LeadershipEventType = "leader_changed"
)

// LeadershipEvent describes a leadership transition observed by this replica.
type LeadershipEvent struct {
	Type     LeadershipEventType
	LeaderID string
}

// leaderPayload is the JSON value stored under the election key.
type leaderPayload struct {
	InstanceID string            `json:"instanceId"`
	ElectedAt  time.Time         `json:"electedAt"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// renewIfHeldScript extends the lease only if the stored payload is still
// the exact value this replica wrote. Returns 1 on success, 0 otherwise.
var renewIfHeldScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// resignIfHeldScript deletes the election key only if we still hold it.
var resignIfHeldScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Elector campaigns for a lease-based leadership under a named election key
// and notifies local subscribers of transitions.
//
// The election key holds a JSON payload {instanceId, electedAt, metadata}
// with TTL LeaseTTL. The holder renews at TTL/2; if renewal fails the
// replica self-demotes and rejoins the campaign. A watcher observes the key
// (pub/sub announcement plus a poll fallback that also covers silent lease
// expiry) and emits leader_changed / demoted events.
type Elector struct {
	rdb        *redis.Client
	key        string
	channel    string
	instanceID string
	leaseTTL   time.Duration
	campaign   time.Duration
	metadata   map[string]string

	mu         sync.RWMutex
	isLeader   bool
	leaderID   string
	payload    string // exact JSON written while leader, for CAS renew/resign
	electedCh  chan struct{}
	subscriber map[int]chan LeadershipEvent
	subSeq     int

	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewElector creates an elector for this instance. The election key is
// derived from the cluster prefix (spec key "/<prefix>/leader").
func NewElector(rdb *redis.Client, cfg Config) *Elector {
	leaseTTL := cfg.LeaseTTL
	if leaseTTL <= 0 {
		leaseTTL = DefaultLeaseTTL
	}
	return &Elector{
		rdb:        rdb,
		key:        "/" + cfg.Prefix + "/leader",
		channel:    cfg.Prefix + ":sync:leader",
		instanceID: cfg.InstanceID,
		leaseTTL:   leaseTTL,
		campaign:   DefaultCampaignInterval,
		metadata:   map[string]string{"hostname": resolveInstanceID()},
		electedCh:  make(chan struct{}),
		subscriber: make(map[int]chan LeadershipEvent),
	}
}

// Start joins the campaign. It never blocks waiting for leadership.
// Safe to call once; subsequent calls are no-ops.
func (e *Elector) Start(ctx context.Context) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	loopCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.mu.Unlock()

	e.wg.Add(2)
	go func() {
		defer e.wg.Done()
		e.campaignLoop(loopCtx)
	}()
	go func() {
		defer e.wg.Done()
		e.watchLoop(loopCtx)
	}()

	slog.Info("Elector started", "instance_id", e.instanceID, "key", e.key, "lease_ttl", e.leaseTTL)
	_ = ctx
}

// Stop resigns leadership (if held) and stops all background loops.
// No in-process election state persists across Stop.
func (e *Elector) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	cancel := e.cancel
	e.mu.Unlock()

	cancel()
	e.wg.Wait()
	e.resign()
	slog.Info("Elector stopped", "instance_id", e.instanceID)
}

// InstanceID returns this replica's identity.
func (e *Elector) InstanceID() string {
	return e.instanceID
}

// IsLeader reports whether this replica currently believes it holds the lease.
func (e *Elector) IsLeader() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isLeader
}

// LeaderID returns the last observed leader instance id ("" if unknown).
func (e *Elector) LeaderID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.leaderID
}

// WaitForLeadership blocks until this replica is elected or the timeout
// elapses. Returns true if leadership was obtained.
func (e *Elector) WaitForLeadership(timeout time.Duration) bool {
	e.mu.RLock()
	if e.isLeader {
		e.mu.RUnlock()
		return true
	}
	ch := e.electedCh
	e.mu.RUnlock()

	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Subscribe registers a local subscriber for leadership events. Events are
// dropped rather than blocking if the subscriber falls behind. The returned
// function unregisters the subscriber.
func (e *Elector) Subscribe() (<-chan LeadershipEvent, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.subSeq
	e.subSeq++
	ch := make(chan LeadershipEvent, 16)
	e.subscriber[id] = ch
	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subscriber, id)
	}
}

func (e *Elector) publish(ev LeadershipEvent) {
	for _, ch := range e.subscriber {
		select {
		case ch <- ev:
		default:
		}
	}
}

// campaignLoop attempts to acquire the lease when not leader, and renews
// it at half the TTL while leader. Renewal failure self-demotes.
func (e *Elector) campaignLoop(ctx context.Context) {
	renewInterval := e.leaseTTL / 2
	for {
		e.mu.RLock()
		leading := e.isLeader
		e.mu.RUnlock()

		var wait time.Duration
		if leading {
			wait = renewInterval
		} else {
			wait = e.campaign
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		if leading {
			e.renew(ctx)
		} else {
			e.tryAcquire(ctx)
		}
	}
}

func (e *Elector) tryAcquire(ctx context.Context) {
	payload, err := json.Marshal(leaderPayload{
		InstanceID: e.instanceID,
		ElectedAt:  time.Now().UTC(),
		Metadata:   e.metadata,
	})
	if err != nil {
		return
	}

	ok, err := e.rdb.SetNX(ctx, e.key, string(payload), e.leaseTTL).Result()
	if err != nil {
		slog.Debug("Leader campaign attempt failed", "instance_id", e.instanceID, "error", err)
		return
	}
	if !ok {
		return
	}

	e.mu.Lock()
	e.isLeader = true
	e.leaderID = e.instanceID
	e.payload = string(payload)
	close(e.electedCh)
	e.publish(LeadershipEvent{Type: EventElected, LeaderID: e.instanceID})
	e.publish(LeadershipEvent{Type: EventLeaderChanged, LeaderID: e.instanceID})
	e.mu.Unlock()

	// Announce so watchers on other replicas see the change immediately
	// instead of waiting for their next poll.
	if err := e.rdb.Publish(ctx, e.channel, e.instanceID).Err(); err != nil {
		slog.Debug("Leader announce failed", "error", err)
	}

	slog.Info("Leadership acquired", "instance_id", e.instanceID, "key", e.key)
}

func (e *Elector) renew(ctx context.Context) {
	e.mu.RLock()
	payload := e.payload
	e.mu.RUnlock()

	n, err := renewIfHeldScript.Run(ctx, e.rdb, []string{e.key},
		payload, e.leaseTTL.Milliseconds()).Int()
	if err != nil || n == 0 {
		slog.Warn("Lease renewal failed, self-demoting",
			"instance_id", e.instanceID, "error", err)
		e.demote("")
	}
}

// demote clears local leadership state. newLeader may be "" if unknown.
func (e *Elector) demote(newLeader string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.isLeader {
		return
	}
	e.isLeader = false
	e.leaderID = newLeader
	e.payload = ""
	e.electedCh = make(chan struct{})
	e.publish(LeadershipEvent{Type: EventDemoted, LeaderID: newLeader})
}

// resign releases the lease on shutdown so a peer can take over without
// waiting out the TTL.
func (e *Elector) resign() {
	e.mu.Lock()
	held := e.isLeader
	payload := e.payload
	e.isLeader = false
	e.payload = ""
	e.mu.Unlock()

	if !held {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := resignIfHeldScript.Run(ctx, e.rdb, []string{e.key}, payload).Int(); err != nil {
		slog.Warn("Leadership resign failed", "error", err)
	}
	_ = e.rdb.Publish(ctx, e.channel, "").Err()
	slog.Info("Leadership resigned", "instance_id", e.instanceID)
}

// watchLoop observes the election key for external changes. It combines a
// pub/sub subscription (fast path) with a periodic poll (covers lease
// expiry, which produces no announcement). On watcher error the loop is
// restarted after a 1 s backoff.
func (e *Elector) watchLoop(ctx context.Context) {
	for {
		if err := e.watchOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("Leader watcher terminated, restarting", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		return
	}
}

func (e *Elector) watchOnce(ctx context.Context) error {
	sub := e.rdb.Subscribe(ctx, e.channel)
	defer func() { _ = sub.Close() }()

	msgs := sub.Channel()
	ticker := time.NewTicker(e.campaign)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("leader pub/sub channel closed")
			}
			e.observeLeader(ctx, msg.Payload)
		case <-ticker.C:
			current, err := e.currentLeader(ctx)
			if err != nil {
				slog.Debug("Leader poll failed", "error", err)
				continue
			}
			e.observeLeader(ctx, current)
		}
	}
}

// currentLeader reads the election key and returns the holder's instance id
// ("" when the key is absent).
func (e *Elector) currentLeader(ctx context.Context) (string, error) {
	raw, err := e.rdb.Get(ctx, e.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var payload leaderPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", fmt.Errorf("malformed election payload: %w", err)
	}
	return payload.InstanceID, nil
}

// observeLeader reconciles locally tracked leadership against an observed
// leader id. Emits leader_changed on change and demoted if we previously
// held leadership that now belongs elsewhere.
func (e *Elector) observeLeader(_ context.Context, observed string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if observed == e.leaderID {
		return
	}

	wasLeader := e.isLeader
	previous := e.leaderID
	e.leaderID = observed

	if wasLeader && observed != e.instanceID {
		e.isLeader = false
		e.payload = ""
		e.electedCh = make(chan struct{})
		e.publish(LeadershipEvent{Type: EventDemoted, LeaderID: observed})
	}
	if observed != "" {
		e.publish(LeadershipEvent{Type: EventLeaderChanged, LeaderID: observed})
	}

	slog.Debug("Leader change observed",
		"previous", previous, "current", observed, "instance_id", e.instanceID)
}
