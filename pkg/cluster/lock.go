package cluster

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired is returned by WithLock when the lock could not be
// obtained within the wait budget.
var ErrLockNotAcquired = errors.New("lock not acquired")

// releaseIfHeldScript deletes the lock key only if the stored fencing token
// matches. Compare-and-delete must run server-side to stay atomic.
var releaseIfHeldScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendIfHeldScript refreshes the TTL only if the fencing token matches.
var extendIfHeldScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// LockOptions controls acquisition behavior.
type LockOptions struct {
	TTL         time.Duration // lease duration; DefaultLockTTL if zero
	Wait        bool          // retry until WaitTimeout instead of failing fast
	WaitTimeout time.Duration // defaults to 2×TTL
}

// Lock represents one acquisition of a distributed mutex. The fencing token
// is unique per acquisition and proves ownership for release/extend.
type Lock struct {
	Resource     string
	FencingToken string
	AcquiredAt   time.Time
	ExpiresAt    time.Time

	svc *LockService
	key string

	mu        sync.Mutex
	lost      bool
	released  bool
	lostCh    chan struct{}
	stopRenew chan struct{}
	stopOnce  sync.Once
	renewDone chan struct{}
}

// Lost is closed when auto-renewal detects the lock is no longer held.
// Guarded code should check it after suspension points and treat further
// writes as best-effort once it fires.
func (l *Lock) Lost() <-chan struct{} {
	return l.lostCh
}

func (l *Lock) markLost() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lost {
		return
	}
	l.lost = true
	close(l.lostCh)
}

// LockService provides mutual exclusion over string-keyed resources across
// the cluster. Keys live under "<prefix>:lock:<resource>"; values are the
// per-acquisition fencing token.
type LockService struct {
	rdb        *redis.Client
	prefix     string
	defaultTTL time.Duration

	retryDelay time.Duration
}

// NewLockService creates a lock service over the given Redis client.
func NewLockService(rdb *redis.Client, cfg Config) *LockService {
	return &LockService{
		rdb:        rdb,
		prefix:     cfg.Prefix,
		defaultTTL: DefaultLockTTL,
		retryDelay: 100 * time.Millisecond,
	}
}

func (s *LockService) lockKey(resource string) string {
	return s.prefix + ":lock:" + resource
}

// Acquire attempts to take the lock on resource. Returns (nil, nil) when the
// lock is held elsewhere (and Wait is unset or the wait budget elapsed), and
// (nil, err) on a backing-store failure.
//
// On success a renewer goroutine extends the lease at TTL/2. If a renewal
// fails the lock's Lost channel closes and subsequent Release is a no-op.
func (s *LockService) Acquire(ctx context.Context, resource string, opts LockOptions) (*Lock, error) {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	waitTimeout := opts.WaitTimeout
	if waitTimeout <= 0 {
		waitTimeout = 2 * ttl
	}

	deadline := time.Now().Add(waitTimeout)
	for {
		lock, err := s.tryAcquire(ctx, resource, ttl)
		if err != nil {
			return nil, err
		}
		if lock != nil {
			return lock, nil
		}
		if !opts.Wait || time.Now().After(deadline) {
			return nil, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
}

func (s *LockService) tryAcquire(ctx context.Context, resource string, ttl time.Duration) (*Lock, error) {
	token := uuid.NewString()
	key := s.lockKey(resource)

	ok, err := s.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	now := time.Now()
	lock := &Lock{
		Resource:     resource,
		FencingToken: token,
		AcquiredAt:   now,
		ExpiresAt:    now.Add(ttl),
		svc:          s,
		key:          key,
		lostCh:       make(chan struct{}),
		stopRenew:    make(chan struct{}),
		renewDone:    make(chan struct{}),
	}
	go s.renewLoop(lock, ttl)

	slog.Debug("Lock acquired", "resource", resource, "token", token, "ttl", ttl)
	return lock, nil
}

// renewLoop extends the lease at TTL/2 until the lock is released or the
// renewal CAS fails (key expired or taken over).
func (s *LockService) renewLoop(lock *Lock, ttl time.Duration) {
	defer close(lock.renewDone)
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-lock.stopRenew:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			n, err := extendIfHeldScript.Run(ctx, s.rdb, []string{lock.key},
				lock.FencingToken, ttl.Milliseconds()).Int()
			cancel()
			if err != nil || n == 0 {
				slog.Warn("Lock renewal failed, treating lock as lost",
					"resource", lock.Resource, "token", lock.FencingToken, "error", err)
				lock.markLost()
				return
			}
			lock.mu.Lock()
			lock.ExpiresAt = time.Now().Add(ttl)
			lock.mu.Unlock()
		}
	}
}

// Release surrenders the lock. Returns false when the lock was already lost,
// expired, or released — idempotent and never an error after expiry.
func (s *LockService) Release(ctx context.Context, lock *Lock) bool {
	if lock == nil {
		return false
	}

	lock.mu.Lock()
	alreadyDone := lock.released || lock.lost
	lock.released = true
	lock.mu.Unlock()

	// Stop the renewer before deleting so it cannot resurrect the TTL.
	lock.stopOnce.Do(func() { close(lock.stopRenew) })
	<-lock.renewDone

	if alreadyDone {
		return false
	}

	n, err := releaseIfHeldScript.Run(ctx, s.rdb, []string{lock.key}, lock.FencingToken).Int()
	if err != nil {
		slog.Warn("Lock release failed", "resource", lock.Resource, "error", err)
		return false
	}
	return n == 1
}

// Extend refreshes the lock TTL. Returns false if the lock is no longer held.
func (s *LockService) Extend(ctx context.Context, lock *Lock, ttl time.Duration) bool {
	if lock == nil {
		return false
	}
	lock.mu.Lock()
	gone := lock.released || lock.lost
	lock.mu.Unlock()
	if gone {
		return false
	}

	n, err := extendIfHeldScript.Run(ctx, s.rdb, []string{lock.key},
		lock.FencingToken, ttl.Milliseconds()).Int()
	if err != nil || n == 0 {
		return false
	}
	lock.mu.Lock()
	lock.ExpiresAt = time.Now().Add(ttl)
	lock.mu.Unlock()
	return true
}

// WithLock runs fn while holding the lock, releasing it on every exit path.
// fn's error is propagated unchanged. Returns ErrLockNotAcquired when the
// lock could not be obtained.
func (s *LockService) WithLock(ctx context.Context, resource string, opts LockOptions, fn func(ctx context.Context, lock *Lock) error) error {
	if !opts.Wait {
		opts.Wait = true
	}
	lock, err := s.Acquire(ctx, resource, opts)
	if err != nil {
		return err
	}
	if lock == nil {
		return ErrLockNotAcquired
	}
	defer s.Release(ctx, lock)
	return fn(ctx, lock)
}

// TryWithLock is the non-blocking variant of WithLock. Returns (false, nil)
// when the lock is held elsewhere; fn's error is propagated unchanged.
// Backing-store failures during acquisition are treated as not-acquired.
func (s *LockService) TryWithLock(ctx context.Context, resource string, opts LockOptions, fn func(ctx context.Context, lock *Lock) error) (bool, error) {
	opts.Wait = false
	lock, err := s.Acquire(ctx, resource, opts)
	if err != nil {
		slog.Debug("Lock acquisition failed", "resource", resource, "error", err)
		return false, nil
	}
	if lock == nil {
		return false, nil
	}
	defer s.Release(ctx, lock)
	return true, fn(ctx, lock)
}
