package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/identity"
	"github.com/shandysiswandi/gomailbox/internal/mailbox"
	"github.com/shandysiswandi/gomailbox/internal/notification"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

func (a *App) initModules() error {
	a.router.GET("/health", a.health)

	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			OID:        a.oid,
			Bcrypt:     a.bcrypt,
			HMAC:       a.hmac,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Storage:    a.storage,
			JWT:        a.jwt,
			Enforcer:   a.casbin,
		}); err != nil {
			return fmt.Errorf("identity: %w", err)
		}
	}

	if a.config.GetBool("modules.mailbox.enabled") {
		if err := mailbox.New(mailbox.Dependency{
			DBConn:      a.dbConn,
			CacheConn:   a.cacheConn,
			Enforcer:    a.casbin,
			Router:      a.router,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Mail:        a.mail,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			return fmt.Errorf("mailbox: %w", err)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Router:     a.router,
			Mail:       a.mail,
		}); err != nil {
			return fmt.Errorf("notification: %w", err)
		}
	}

	return nil
}

type healthResponse struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func (a *App) health(r *router.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.dbConn.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "health check database failed", "error", err)
		return nil, goerror.NewServer(err)
	}
	if err := a.cacheConn.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "health check redis failed", "error", err)
		return nil, goerror.NewServer(err)
	}

	return healthResponse{Database: "ok", Redis: "ok"}, nil
}
