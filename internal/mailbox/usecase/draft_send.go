package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type SendDraftInput struct {
	DraftID int64 `validate:"required,gt=0"`
}

// SendDraft turns the caller's draft into a sent message. Group refs stored on
// the draft are expanded now, and the draft row keeps its id.
func (s *Usecase) SendDraft(ctx context.Context, in SendDraftInput) (*SendMessageOutput, error) {
	ctx, span := s.startSpan(ctx, "SendDraft")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	draft, err := s.ownedDraft(ctx, clm.UserID, in.DraftID)
	if err != nil {
		return nil, err
	}

	var kv []string
	if strings.TrimSpace(draft.Subject) == "" {
		kv = append(kv, "subject", "subject is a required field")
	}
	if len(draft.Recipients) == 0 {
		kv = append(kv, "recipients", "recipients must contain at least 1 item")
	}
	if len(kv) > 0 {
		return nil, goerror.NewInvalidInput(nil, kv...)
	}

	sender, err := s.activeSender(ctx, clm.UserID)
	if err != nil {
		return nil, err
	}

	recipientIDs, err := s.deliver(ctx, sender, outgoing{
		id:      draft.ID,
		subject: draft.Subject,
		body:    draft.Body,
		refs:    draft.RecipientRefs(),
		token:   fmt.Sprint(draft.ID),
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	msg := *draft
	msg.IsDraft = false
	msg.SentAt = &now
	msg.UpdatedAt = now
	msg.SenderName = sender.FullName
	msg.Recipients = userLinks(recipientIDs)

	if err := s.persist(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if err := uow.UpdateMessage(ctx, msg); err != nil {
			return err
		}
		return uow.ReplaceRecipients(ctx, msg.ID, msg.Recipients)
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "draft sent or deleted concurrently", "draft_id", draft.ID)
			return nil, errMessageNotFound()
		}
		slog.ErrorContext(ctx, "failed to repo convert draft to sent", "draft_id", draft.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.afterSent(ctx, sender, msg, recipientIDs)

	return &SendMessageOutput{Message: msg}, nil
}
