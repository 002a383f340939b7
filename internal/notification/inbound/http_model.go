package inbound

import (
	"time"

	"github.com/shandysiswandi/gomailbox/internal/pkg/valueobject"
)

type NotificationResponse struct {
	ID         int64               `json:"id,string"`
	TriggerKey string              `json:"trigger_key"`
	Data       valueobject.JSONMap `json:"data" swaggertype:"object"`
	Metadata   valueobject.JSONMap `json:"metadata" swaggertype:"object"`
	IsRead     bool                `json:"is_read"`
	ReadAt     *time.Time          `json:"read_at,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r NotificationsResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (MarkAllReadResponse) Message() string { return "All notifications marked as read" }
