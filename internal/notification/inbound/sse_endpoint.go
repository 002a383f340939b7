package inbound

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/notification/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/jwt"
)

const (
	sseHeartbeatInterval = 25 * time.Second
	sseRetryMillis       = 5000
)

// sseWriter frames Server-Sent Events and flushes after each one.
type sseWriter struct {
	w io.Writer
	f http.Flusher
}

func (s sseWriter) comment(text string) error {
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return err
	}
	s.f.Flush()
	return nil
}

func (s sseWriter) event(id, name string, data []byte) error {
	if _, err := fmt.Fprintf(s.w, "id: %s\nevent: %s\ndata: %s\n\n", id, name, data); err != nil {
		return err
	}
	s.f.Flush()
	return nil
}

// StreamNotifications pushes new notifications to the caller as they arrive.
// @Summary Notification stream
// @Description Server-Sent Events feed of new notifications. Comment frames are sent as keep-alive.
// @Tags Notification
// @Security BearerAuth
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "streaming unsupported"
// @Router /api/v1/notification/stream [get]
func (h *HTTPEndpoint) StreamNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}
	f, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", "text/event-stream")
	hdr.Set("Cache-Control", "no-cache")
	hdr.Set("Connection", "keep-alive")
	hdr.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sse := sseWriter{w: w, f: f}
	if _, err := fmt.Fprintf(w, "retry: %d\n", sseRetryMillis); err != nil {
		return
	}
	if err := sse.comment("connected"); err != nil {
		slog.WarnContext(ctx, "stream closed before first frame", "user_id", clm.UserID, "error", err)
		return
	}

	h.pump(r, sse, h.uc.StreamNotifications(ctx, clm.UserID), time.NewTicker(sseHeartbeatInterval))
}

func (h *HTTPEndpoint) pump(r *http.Request, sse sseWriter, events <-chan usecase.StreamEvent, heartbeat *time.Ticker) {
	ctx := r.Context()
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-heartbeat.C:
			if err := sse.comment("ping"); err != nil {
				return
			}

		case evt, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(evt)
			if err != nil {
				slog.ErrorContext(ctx, "failed to encode stream event", "notification_id", evt.ID, "error", err)
				continue
			}
			if err := sse.event(strconv.FormatInt(evt.ID, 10), "notification", data); err != nil {
				slog.WarnContext(ctx, "failed to write stream event", "notification_id", evt.ID, "error", err)
				return
			}
		}
	}
}
