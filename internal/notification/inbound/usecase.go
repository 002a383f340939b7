package inbound

import (
	"context"

	"github.com/shandysiswandi/gomailbox/internal/notification/usecase"
)

type ucConsumer interface {
	ConsumeUserActivation(ctx context.Context, in usecase.ConsumeUserActivationInput) error
	ConsumeMessageSent(ctx context.Context, in usecase.ConsumeMessageSentInput) error
}

type ucStream interface {
	StreamNotifications(ctx context.Context, userID int64) <-chan usecase.StreamEvent
}

type uc interface {
	ucConsumer
	ucStream

	ListNotifications(ctx context.Context, in usecase.ListNotificationsInput) (*usecase.ListNotificationsOutput, error)
	UnreadNotificationCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, in usecase.MarkReadInput) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error
}
