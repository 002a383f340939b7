package entity

import (
	"time"

	"github.com/shandysiswandi/gomailbox/internal/pkg/valueobject"
)

// CreateNotification is a new in-app feed row. Data carries the fields the
// client renders; Metadata holds bookkeeping such as the source timestamp.
type CreateNotification struct {
	ID         int64
	UserID     int64
	TriggerKey TriggerKey
	Data       valueobject.JSONMap
	Metadata   valueobject.JSONMap
	CreatedAt  time.Time
}

// CreateDeliveryLog opens the audit trail of one delivery attempt.
type CreateDeliveryLog struct {
	ID             int64
	NotificationID int64
	Channel        Channel
	Status         DeliveryStatus
}

// UpdateDeliveryLog records the outcome reported by the provider.
type UpdateDeliveryLog struct {
	ID               int64
	Status           DeliveryStatus
	ProviderResponse valueobject.JSONMap
	NextRetryAt      *time.Time
}

type NotificationItem struct {
	ID         int64
	TriggerKey TriggerKey
	Data       valueobject.JSONMap
	Metadata   valueobject.JSONMap
	ReadAt     *time.Time
	CreatedAt  time.Time
}

func (n NotificationItem) IsRead() bool { return n.ReadAt != nil }

// NotificationListFilter pages one user's live (not deleted) feed, newest first.
type NotificationListFilter struct {
	UserID int64
	Status NotificationStatus
	Size   int32
	Offset int32
}
