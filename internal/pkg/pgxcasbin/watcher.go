package pgxcasbin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/casbin/casbin/v3/persist"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/atomic"
)

const defaultChannel = "casbin_watcher"

var _ persist.Watcher = (*Watcher)(nil)

// WatcherOptions configures a Watcher.
type WatcherOptions struct {
	// Channel is the postgres LISTEN/NOTIFY channel.
	Channel string
	// LocalID identifies this process; its own notifications are ignored.
	LocalID string
}

// Watcher broadcasts policy changes to other processes through postgres
// NOTIFY and runs the update callback when a peer changes the policy.
type Watcher struct {
	pool    *pgxpool.Pool
	channel string
	localID string

	mu       sync.RWMutex
	callback func(string)

	closed *atomic.Bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher starts listening on opts.Channel. The listener reconnects with
// a capped fibonacci backoff until Close is called.
func NewWatcher(ctx context.Context, pool *pgxpool.Pool, opts WatcherOptions) (*Watcher, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pgxcasbin: ping: %w", err)
	}
	if opts.Channel == "" {
		opts.Channel = defaultChannel
	}
	if opts.LocalID == "" {
		opts.LocalID = uuid.NewString()
	}

	listenCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w := &Watcher{
		pool:    pool,
		channel: opts.Channel,
		localID: opts.LocalID,
		closed:  atomic.NewBool(false),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go w.run(listenCtx)
	return w, nil
}

// ReloadCallback reloads the whole policy of e whenever a peer reports a change.
func ReloadCallback(e interface{ LoadPolicy() error }) func(string) {
	return func(sender string) {
		if err := e.LoadPolicy(); err != nil {
			slog.Error("pgxcasbin: failed to reload policy", "sender", sender, "error", err)
			return
		}
		slog.Info("pgxcasbin: policy reloaded", "sender", sender)
	}
}

func (w *Watcher) SetUpdateCallback(fn func(string)) error {
	w.mu.Lock()
	w.callback = fn
	w.mu.Unlock()
	return nil
}

// Update notifies peers that the policy changed. The payload is the local id.
func (w *Watcher) Update() error {
	if w.closed.Load() {
		return errors.New("pgxcasbin: watcher is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := w.pool.Exec(ctx, "SELECT pg_notify($1, $2)", w.channel, w.localID); err != nil {
		return fmt.Errorf("pgxcasbin: notify: %w", err)
	}
	return nil
}

func (w *Watcher) Close() {
	if w.closed.Swap(true) {
		return
	}
	w.cancel()
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	b := retry.WithCappedDuration(5*time.Second, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		err := w.listen(ctx)
		if err == nil || ctx.Err() != nil {
			return nil
		}
		slog.Error("pgxcasbin: listener failed, reconnecting", "channel", w.channel, "error", err)
		return retry.RetryableError(err)
	})
	if err != nil && ctx.Err() == nil {
		slog.Error("pgxcasbin: listener stopped", "channel", w.channel, "error", err)
	}
}

func (w *Watcher) listen(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{w.channel}.Sanitize()); err != nil {
		return err
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		if n.Payload == w.localID {
			continue
		}

		w.mu.RLock()
		fn := w.callback
		w.mu.RUnlock()
		if fn != nil {
			fn(n.Payload)
		}
	}
}
