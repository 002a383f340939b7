package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/valueobject"
)

type ConsumeMessageSentInput struct {
	MessageID    int64 `validate:"required,gt=0"`
	SenderID     int64 `validate:"required,gt=0"`
	SenderName   string
	Subject      string
	RecipientIDs []int64
	SentAt       time.Time
}

// ConsumeMessageSent records a "new message" notification for every recipient
// and pushes it to the recipient's open streams. The sender is never notified
// about their own message.
func (s *Usecase) ConsumeMessageSent(ctx context.Context, in ConsumeMessageSentInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeMessageSent")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	recipients := lo.Without(lo.Uniq(in.RecipientIDs), in.SenderID)
	if len(recipients) == 0 {
		return nil
	}

	now := s.clock.Now()
	items := make([]entity.CreateNotification, 0, len(recipients))
	for _, userID := range recipients {
		items = append(items, entity.CreateNotification{
			ID:         s.uid.Generate(),
			UserID:     userID,
			TriggerKey: entity.TriggerKeyMessageReceived,
			Data: valueobject.JSONMap{
				"message_id":  in.MessageID,
				"sender_id":   in.SenderID,
				"sender_name": in.SenderName,
				"subject":     in.Subject,
			},
			Metadata:  valueobject.JSONMap{"sent_at": in.SentAt.UTC().Format(time.RFC3339)},
			CreatedAt: now,
		})
	}

	if err := s.repoDB.CreateNotifications(ctx, items); err != nil {
		slog.ErrorContext(ctx, "failed to repo create notifications", "message_id", in.MessageID, "count", len(items), "error", err)
		return goerror.NewServer(err)
	}

	for _, n := range items {
		s.broadcast(ctx, newStreamEvent(n))
	}

	return nil
}
