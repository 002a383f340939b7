// Package idempotency guards side effects with a per-key state machine kept
// in Redis: none -> in_progress -> completed | failed.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("idempotency: operation already in progress")
	ErrAlreadyCompleted  = errors.New("idempotency: operation already completed")
	ErrAlreadyFailed     = errors.New("idempotency: operation already failed")
	ErrInvalidState      = errors.New("idempotency: invalid state")
)

type State string

const (
	// StateNone means the caller now holds the key.
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	// StateError is returned together with a non-nil error.
	StateError State = "error"
)

func (s State) String() string { return string(s) }

type Idempotency interface {
	Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error)
	MarkCompleted(ctx context.Context, key string, ttl time.Duration) error
	MarkFailed(ctx context.Context, key string, ttl time.Duration) error
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// Client is the subset of go-redis used here. *redis.Client and
// *redis.ClusterClient both satisfy it.
type Client interface {
	redis.Cmdable
	redis.Scripter
}

const (
	keyPrefix           = "idempotency:"
	defaultLockDuration = time.Minute
	defaultStateTTL     = time.Minute
)

var (
	// acquireScript claims the key or reports the state that blocks it.
	// An empty reply means the key was claimed.
	acquireScript = redis.NewScript(`
if redis.call("SET", KEYS[1], ARGV[1], "NX", "PX", ARGV[2]) then
	return ""
end
return redis.call("GET", KEYS[1])
`)

	// reclaimScript moves a failed key back to in_progress so exactly one
	// caller retries it.
	reclaimScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
	return 1
end
return 0
`)
)

type StateTracker struct {
	client Client
}

func New(client Client) *StateTracker {
	return &StateTracker{client: client}
}

type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
	retryFailed  bool
}

// WithLockDuration bounds how long an in_progress claim survives a crash.
func WithLockDuration(d time.Duration) Option {
	return func(o *execOptions) { o.lockDuration = d }
}

// WithStateTTL sets how long the completed or failed outcome is remembered.
func WithStateTTL(d time.Duration) Option {
	return func(o *execOptions) { o.stateTTL = d }
}

// WithRetryFailed lets Exec run fn again after a failed attempt instead of
// returning ErrAlreadyFailed.
func WithRetryFailed() Option {
	return func(o *execOptions) { o.retryFailed = true }
}

func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	res, err := acquireScript.Run(ctx, s.client, []string{keyPrefix + key},
		StateInProgress.String(), lockDuration.Milliseconds()).Text()
	if err != nil {
		return StateError, err
	}

	switch State(res) {
	case "":
		return StateNone, nil
	case StateInProgress, StateCompleted, StateFailed:
		return State(res), nil
	default:
		return StateError, fmt.Errorf("%w: %q", ErrInvalidState, res)
	}
}

func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, StateCompleted.String(), ttl).Err()
}

func (s *StateTracker) MarkFailed(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, StateFailed.String(), ttl).Err()
}

// Exec runs fn at most once per key until the recorded outcome expires. The
// outcome of fn is recorded before Exec returns; fn's own error wins over a
// failure to record it.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	o := execOptions{lockDuration: defaultLockDuration, stateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lockDuration <= 0 {
		o.lockDuration = defaultLockDuration
	}
	if o.stateTTL <= 0 {
		o.stateTTL = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, o.lockDuration)
	if err != nil {
		return err
	}
	if err := s.admit(ctx, key, state, o); err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		return errors.Join(err, s.MarkFailed(ctx, key, o.stateTTL))
	}
	return s.MarkCompleted(ctx, key, o.stateTTL)
}

func (s *StateTracker) admit(ctx context.Context, key string, state State, o execOptions) error {
	switch state {
	case StateNone:
		return nil
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	case StateFailed:
		if !o.retryFailed {
			return ErrAlreadyFailed
		}
		n, err := reclaimScript.Run(ctx, s.client, []string{keyPrefix + key},
			StateFailed.String(), StateInProgress.String(), o.lockDuration.Milliseconds()).Int()
		if err != nil {
			return err
		}
		if n != 1 {
			return ErrAlreadyInProgress
		}
		return nil
	default:
		return ErrInvalidState
	}
}
