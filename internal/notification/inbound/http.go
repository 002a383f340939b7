package inbound

import (
	"net/http"

	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/notification/inbox", end.ListNotifications)
	r.GET("/api/v1/notification/inbox/unread-count", end.UnreadCount)
	r.PATCH("/api/v1/notification/inbox/:id/read", end.MarkRead)
	r.PUT("/api/v1/notification/inbox/read-all", end.MarkAllRead)
	r.DELETE("/api/v1/notification/inbox/:id", end.Delete)

	r.GETRaw("/api/v1/notification/stream", http.HandlerFunc(end.StreamNotifications))
}
