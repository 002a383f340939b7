package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type SaveDraftInput struct {
	DraftID    int64            `validate:"gte=0"` // zero creates a new draft
	Subject    string           `validate:"max=255"`
	Body       string           `validate:"max=100000"`
	Recipients []RecipientInput `validate:"max=500,dive"`
}

type UpdateDraftInput struct {
	DraftID    int64            `validate:"required,gt=0"`
	Subject    string           `validate:"max=255"`
	Body       string           `validate:"max=100000"`
	Recipients []RecipientInput `validate:"max=500,dive"`
}

type DraftOutput struct {
	Draft entity.Message
}

// SaveDraft overwrites the caller's draft when DraftID names one, otherwise it
// creates a new draft. Drafts keep the refs exactly as composed; groups are
// expanded only at send time.
func (s *Usecase) SaveDraft(ctx context.Context, in SaveDraftInput) (*DraftOutput, error) {
	ctx, span := s.startSpan(ctx, "SaveDraft")
	defer span.End()

	in.Subject = strings.TrimSpace(in.Subject)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.DraftID > 0 {
		draft, err := s.findOwnedDraft(ctx, clm.UserID, in.DraftID)
		if err != nil {
			return nil, err
		}
		if draft != nil {
			return s.overwriteDraft(ctx, draft, in.Subject, in.Body, in.Recipients)
		}
		slog.InfoContext(ctx, "draft id is stale, saving as new draft", "draft_id", in.DraftID, "sender_id", clm.UserID)
	}

	now := s.clock.Now()
	draft := entity.Message{
		ID:         s.uid.Generate(),
		Subject:    in.Subject,
		Body:       in.Body,
		SenderID:   clm.UserID,
		IsDraft:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
		Recipients: refLinks(toRecipientRefs(in.Recipients)),
	}

	if err := s.persist(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if err := uow.CreateMessage(ctx, draft); err != nil {
			return err
		}
		return uow.ReplaceRecipients(ctx, draft.ID, draft.Recipients)
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create draft", "sender_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DraftOutput{Draft: draft}, nil
}

// UpdateDraft fully replaces subject, body and recipients of the caller's draft.
func (s *Usecase) UpdateDraft(ctx context.Context, in UpdateDraftInput) (*DraftOutput, error) {
	ctx, span := s.startSpan(ctx, "UpdateDraft")
	defer span.End()

	in.Subject = strings.TrimSpace(in.Subject)

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

	return s.overwriteDraft(ctx, draft, in.Subject, in.Body, in.Recipients)
}

func (s *Usecase) overwriteDraft(ctx context.Context, draft *entity.Message, subject, body string, recipients []RecipientInput) (*DraftOutput, error) {
	draft.Subject = subject
	draft.Body = body
	draft.UpdatedAt = s.clock.Now()
	draft.Recipients = refLinks(toRecipientRefs(recipients))

	if err := s.persist(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if err := uow.UpdateMessage(ctx, *draft); err != nil {
			return err
		}
		return uow.ReplaceRecipients(ctx, draft.ID, draft.Recipients)
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, errMessageNotFound()
		}
		slog.ErrorContext(ctx, "failed to repo update draft", "draft_id", draft.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DraftOutput{Draft: *draft}, nil
}

// ownedDraft loads a draft of userID. Missing rows, sent messages and drafts of
// other users all look the same to the caller.
func (s *Usecase) ownedDraft(ctx context.Context, userID, draftID int64) (*entity.Message, error) {
	msg, err := s.findOwnedDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, errMessageNotFound()
	}
	return msg, nil
}

// findOwnedDraft returns nil and no error when draftID is not a draft of userID.
func (s *Usecase) findOwnedDraft(ctx context.Context, userID, draftID int64) (*entity.Message, error) {
	msg, err := s.repoDB.GetMessageByID(ctx, draftID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get message", "message_id", draftID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !msg.OwnedDraft(userID) {
		slog.WarnContext(ctx, "draft not owned by caller or already sent", "message_id", draftID, "user_id", userID)
		return nil, nil
	}

	return msg, nil
}

func refLinks(refs []entity.RecipientRef) []entity.RecipientLink {
	links := make([]entity.RecipientLink, 0, len(refs))
	for _, r := range refs {
		links = append(links, entity.RecipientLink{RecipientID: r.ID, RecipientKind: r.Kind})
	}
	return links
}
