package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned by TryLock when another holder owns the lock.
var ErrLockNotAcquired = errors.New("lock held by another owner")

// ErrLockNotHeld is returned when releasing or refreshing a lock this client does not own.
var ErrLockNotHeld = errors.New("lock was not held by this client")

const unlockScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

const refreshScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("PEXPIRE", KEYS[1], ARGV[2])
	else
		return 0
	end
`

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// LockNamespace prefixes the lock key as LockNamespace::key
	LockNamespace string
	// RefreshInterval, when positive, makes WithLock extend the TTL while fn runs
	RefreshInterval time.Duration
}

// NewLockOptions creates lock options with default values
func NewLockOptions() *LockOptions {
	return &LockOptions{TTL: 30 * time.Second}
}

// WithTTL sets the lock expiration time
func (lo *LockOptions) WithTTL(ttl time.Duration) *LockOptions {
	lo.TTL = ttl
	return lo
}

// WithLockNamespace sets the namespace for organizing locks
func (lo *LockOptions) WithLockNamespace(namespace string) *LockOptions {
	lo.LockNamespace = namespace
	return lo
}

// WithRefreshInterval sets how often WithLock extends the lock
func (lo *LockOptions) WithRefreshInterval(interval time.Duration) *LockOptions {
	lo.RefreshInterval = interval
	return lo
}

// Lock is a single-owner distributed lock backed by SET NX.
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.New().String(),
		opts:   opts,
	}
}

// Key returns the full redis key of the lock.
func (l *Lock) Key() string {
	if l.opts.LockNamespace != "" {
		return l.opts.LockNamespace + "::" + l.key
	}
	return l.key
}

// TryLock makes a single acquisition attempt.
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.Key(), l.value, l.opts.TTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return ErrLockNotAcquired
	}
	return nil
}

// Unlock releases the lock if this client still owns it.
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.Key()}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL if this client still owns it.
func (l *Lock) Refresh(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, refreshScript, []string{l.Key()}, l.value, l.opts.TTL.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// WithLock runs fn while holding the lock named key. It returns ErrLockNotAcquired without
// running fn when another owner holds it. With a RefreshInterval the lock is extended until fn
// returns; if a refresh finds the lock lost, fn's context is cancelled.
func WithLock(ctx context.Context, client *Client, key string, opts *LockOptions, fn func(context.Context) error) error {
	lock := NewLock(client, key, opts)
	if err := lock.TryLock(ctx); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock(context.WithoutCancel(ctx)) }()

	if lock.opts.RefreshInterval <= 0 {
		return fn(ctx)
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	go lock.keepAlive(runCtx, cancel)

	return fn(runCtx)
}

func (l *Lock) keepAlive(ctx context.Context, cancel context.CancelCauseFunc) {
	ticker := time.NewTicker(l.opts.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.Refresh(ctx); err != nil {
				if errors.Is(err, ErrLockNotHeld) {
					cancel(err)
					return
				}
			}
		}
	}
}
