package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Run serves until ctx is cancelled or a server fails, then stops the app
// within app.server.shutdown_timeout_seconds.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for name, srv := range map[string]*http.Server{"http": a.httpServer, "sse": a.sseServer} {
		g.Go(func() error {
			slog.Info("app: server listening", "server", name, "address", srv.Addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("app: %s server: %w", name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("app: shutting down")

		timeout := a.config.GetSecond("app.server.shutdown_timeout_seconds")
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		a.Stop(stopCtx)
		return nil
	})

	return g.Wait()
}
