package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type MarkReadInput struct {
	MessageID int64 `validate:"required,gt=0"`
}

type UnreadCountOutput struct {
	Count int64
}

// MarkRead flags the caller's own recipient link as read.
func (s *Usecase) MarkRead(ctx context.Context, in MarkReadInput) error {
	ctx, span := s.startSpan(ctx, "MarkRead")
	defer span.End()

	now := s.clock.Now()
	return s.setRead(ctx, in, &now)
}

// MarkUnread clears the read flag on the caller's own recipient link.
func (s *Usecase) MarkUnread(ctx context.Context, in MarkReadInput) error {
	ctx, span := s.startSpan(ctx, "MarkUnread")
	defer span.End()

	return s.setRead(ctx, in, nil)
}

func (s *Usecase) setRead(ctx context.Context, in MarkReadInput, readAt *time.Time) error {
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	err = s.repoDB.SetRecipientRead(ctx, in.MessageID, clm.UserID, readAt)
	if errors.Is(err, goerror.ErrNotFound) {
		return errMessageNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo set recipient read", "message_id", in.MessageID, "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) UnreadCount(ctx context.Context) (*UnreadCountOutput, error) {
	ctx, span := s.startSpan(ctx, "UnreadCount")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.repoDB.CountUnread(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count unread", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UnreadCountOutput{Count: count}, nil
}
