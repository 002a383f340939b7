package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/notification/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type ListNotificationsInput struct {
	Status string `validate:"omitempty,oneof=all unread read"`
	Page   int32
	Size   int32
}

type ListNotificationsOutput struct {
	Page  int32
	Size  int32
	Total int64
	Items []entity.NotificationItem
}

func (s *Usecase) ListNotifications(ctx context.Context, in ListNotificationsInput) (*ListNotificationsOutput, error) {
	ctx, span := s.startSpan(ctx, "ListNotifications")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 20
	}
	page := max(in.Page, 1)

	items, total, err := s.repoDB.ListNotifications(ctx, entity.NotificationListFilter{
		UserID: userID,
		Status: entity.ParseNotificationStatus(in.Status),
		Size:   in.Size,
		Offset: (page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list notifications", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListNotificationsOutput{
		Page:  page,
		Size:  in.Size,
		Total: total,
		Items: items,
	}, nil
}

func (s *Usecase) UnreadNotificationCount(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "UnreadNotificationCount")
	defer span.End()

	userID, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	count, err := s.repoDB.CountUnreadNotifications(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count unread notifications", "user_id", userID, "error", err)
		return 0, goerror.NewServer(err)
	}

	return count, nil
}
