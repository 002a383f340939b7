package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type MarkReadInput struct {
	ID int64 `validate:"required,gt=0"`
}

type DeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func errNotificationNotFound() error {
	return goerror.NewBusiness("notification not found", goerror.CodeNotFound)
}

// ownedOp mutates one notification of the caller. ok=false means the row is
// missing, deleted or belongs to someone else.
type ownedOp func(ctx context.Context, userID, notificationID int64) (ok bool, err error)

func (s *Usecase) applyOwned(ctx context.Context, action string, id int64, op ownedOp) error {
	userID, err := s.caller(ctx)
	if err != nil {
		return err
	}

	ok, err := op(ctx, userID, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo "+action, "user_id", userID, "notification_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !ok {
		return errNotificationNotFound()
	}
	return nil
}

func (s *Usecase) MarkRead(ctx context.Context, in MarkReadInput) error {
	ctx, span := s.startSpan(ctx, "MarkRead")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}
	return s.applyOwned(ctx, "mark notification read", in.ID, s.repoDB.MarkNotificationRead)
}

// Delete hides a notification from the caller's feed; rows are soft deleted.
func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}
	return s.applyOwned(ctx, "delete notification", in.ID, s.repoDB.SoftDeleteNotification)
}

// MarkAllRead returns how many notifications changed state.
func (s *Usecase) MarkAllRead(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "MarkAllRead")
	defer span.End()

	userID, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repoDB.MarkNotificationsReadAll(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark all notifications read", "user_id", userID, "error", err)
		return 0, goerror.NewServer(err)
	}
	return n, nil
}
