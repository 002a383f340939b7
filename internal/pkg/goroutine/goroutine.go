// Package goroutine runs long-lived background jobs, such as broker
// consumers, under a concurrency cap and collects their failures.
package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/gomailbox/internal/pkg/stacktrace"
	"golang.org/x/sync/semaphore"
)

// DefaultLimit applies when NewManager gets a non-positive limit.
const DefaultLimit = 64

// ErrLimitReached is recorded when a job is refused for lack of capacity.
var ErrLimitReached = errors.New("goroutine: limit reached")

// Manager tracks background jobs. A job ending with context.Canceled is a
// normal shutdown and is not reported by Wait.
type Manager struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup

	mu     sync.Mutex
	errs   []error
	closed bool
}

func NewManager(limit int) *Manager {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Manager{sem: semaphore.NewWeighted(int64(limit))}
}

// Go starts fn in its own goroutine unless the manager is closed or full.
// A panic in fn is logged and recorded as an error of the job.
func (m *Manager) Go(ctx context.Context, fn func(ctx context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		slog.WarnContext(ctx, "goroutine manager closed, job skipped")
		return
	}
	if !m.sem.TryAcquire(1) {
		slog.WarnContext(ctx, "goroutine limit reached, job skipped")
		m.errs = append(m.errs, ErrLimitReached)
		return
	}

	m.wg.Go(func() {
		defer m.sem.Release(1)
		m.record(run(ctx, fn))
	})
}

// Wait refuses new jobs, waits for running ones and joins their errors.
func (m *Manager) Wait() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Join(m.errs...)
}

func (m *Manager) record(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	m.mu.Lock()
	m.errs = append(m.errs, err)
	m.mu.Unlock()
}

func run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		rvr := recover()
		if rvr == nil {
			return
		}
		stack := debug.Stack()
		if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
			slog.ErrorContext(ctx, "panic in background job", "panic", rvr, "stack", paths)
		} else {
			slog.ErrorContext(ctx, "panic in background job", "panic", rvr, "stack", string(stack))
		}
		err = fmt.Errorf("goroutine: panic: %v", rvr)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
