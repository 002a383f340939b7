package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type GetMessageInput struct {
	MessageID int64 `validate:"required,gt=0"`
}

type GetMessageOutput struct {
	Message entity.Message
	// Recipients holds directory entries for the user links, keyed by user id.
	Recipients map[int64]entity.User
}

func (s *Usecase) GetMessage(ctx context.Context, in GetMessageInput) (*GetMessageOutput, error) {
	ctx, span := s.startSpan(ctx, "GetMessage")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.repoDB.GetMessageByID(ctx, in.MessageID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errMessageNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get message", "message_id", in.MessageID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !msg.VisibleTo(clm.UserID) {
		slog.WarnContext(ctx, "message not visible to caller", "message_id", in.MessageID, "user_id", clm.UserID)
		return nil, errMessageNotFound()
	}

	var ids []int64
	for _, l := range msg.Recipients {
		if l.RecipientKind == entity.RecipientKindUser {
			ids = append(ids, l.RecipientID)
		}
	}

	recipients := make(map[int64]entity.User, len(ids))
	if len(ids) > 0 {
		users, err := s.repoDB.GetUsersByIDs(ctx, ids)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get recipients", "message_id", in.MessageID, "error", err)
			return nil, goerror.NewServer(err)
		}
		for _, u := range users {
			recipients[u.ID] = u
		}
	}

	return &GetMessageOutput{Message: *msg, Recipients: recipients}, nil
}
