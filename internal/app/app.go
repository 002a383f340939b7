// Package app assembles the service: it opens shared resources, mounts the
// enabled modules on the router and runs the HTTP and SSE servers.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gomailbox/internal/pkg/clock"
	"github.com/shandysiswandi/gomailbox/internal/pkg/config"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goroutine"
	"github.com/shandysiswandi/gomailbox/internal/pkg/hash"
	"github.com/shandysiswandi/gomailbox/internal/pkg/idempotency"
	"github.com/shandysiswandi/gomailbox/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
	"github.com/shandysiswandi/gomailbox/internal/pkg/mail"
	"github.com/shandysiswandi/gomailbox/internal/pkg/messaging"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
	"github.com/shandysiswandi/gomailbox/internal/pkg/storage"
	"github.com/shandysiswandi/gomailbox/internal/pkg/uid"
	"github.com/shandysiswandi/gomailbox/internal/pkg/validator"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	config config.Config
	ins    instrument.Instrumentation

	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	jwt       jwt.JWT

	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage
	casbin    *casbin.Enforcer

	router     *router.Router
	httpServer *http.Server
	sseServer  *http.Server

	// closers run in reverse registration order on Stop.
	closers  []closer
	stopOnce sync.Once
}

type closer struct {
	name string
	fn   func(context.Context) error
}

// New opens every resource in dependency order. When a step fails, the
// resources opened so far are closed before the error is returned.
func New(ctx context.Context) (*App, error) {
	a := &App{}
	a.ctx, a.cancel = context.WithCancel(ctx)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"config", a.initConfig},
		{"instrument", a.initInstrument},
		{"libraries", a.initLibraries},
		{"jwt", a.initJWT},
		{"database", a.initDatabase},
		{"cache", a.initCache},
		{"mail", a.initMail},
		{"storage", a.initStorage},
		{"messaging", a.initMessaging},
		{"casbin", a.initCasbin},
		{"http server", a.initHTTPServer},
		{"modules", a.initModules},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			a.Stop(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("app: init %s: %w", step.name, err)
		}
	}

	return a, nil
}

func (a *App) onStop(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// Stop shuts the servers down, waits for background work and releases
// resources. It is safe to call more than once.
func (a *App) Stop(ctx context.Context) {
	a.stopOnce.Do(func() {
		a.cancel()

		for _, srv := range []*http.Server{a.httpServer, a.sseServer} {
			if srv == nil {
				continue
			}
			if err := srv.Shutdown(ctx); err != nil {
				slog.ErrorContext(ctx, "app: server shutdown failed", "address", srv.Addr, "error", err)
			}
		}

		if a.goroutine != nil {
			slog.InfoContext(ctx, "app: waiting for background jobs")
			if err := a.goroutine.Wait(); err != nil {
				slog.ErrorContext(ctx, "app: background jobs failed", "error", err)
			}
		}

		for _, c := range slices.Backward(a.closers) {
			if err := c.fn(ctx); err != nil {
				slog.ErrorContext(ctx, "app: failed to close resource", "name", c.name, "error", err)
			}
		}
		slog.InfoContext(ctx, "app: stopped")
	})
}
