package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type ListMessagesInput struct {
	Search string // value already trimmed
	Page   int32
	Size   int32
}

type ListMessagesOutput struct {
	Page     int32
	Size     int32
	Messages []entity.MessageSummary
}

type ListAllMessagesOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Messages []entity.MessageSummary
}

type listFn func(ctx context.Context, filter entity.MessageListFilter) ([]entity.MessageSummary, error)

// GetInbox lists sent messages addressed to the caller, newest first.
func (s *Usecase) GetInbox(ctx context.Context, in ListMessagesInput) (*ListMessagesOutput, error) {
	ctx, span := s.startSpan(ctx, "GetInbox")
	defer span.End()

	return s.listOwn(ctx, "inbox", in, s.repoDB.GetInbox)
}

// GetSent lists the caller's sent messages, newest first.
func (s *Usecase) GetSent(ctx context.Context, in ListMessagesInput) (*ListMessagesOutput, error) {
	ctx, span := s.startSpan(ctx, "GetSent")
	defer span.End()

	return s.listOwn(ctx, "sent", in, s.repoDB.GetSent)
}

// GetDrafts lists the caller's drafts, most recently edited first.
func (s *Usecase) GetDrafts(ctx context.Context, in ListMessagesInput) (*ListMessagesOutput, error) {
	ctx, span := s.startSpan(ctx, "GetDrafts")
	defer span.End()

	return s.listOwn(ctx, "drafts", in, s.repoDB.GetDrafts)
}

func (s *Usecase) listOwn(ctx context.Context, box string, in ListMessagesInput, fn listFn) (*ListMessagesOutput, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Size = normalizeSize(in.Size)
	msgs, err := fn(ctx, entity.MessageListFilter{
		UserID: clm.UserID,
		Search: in.Search,
		Size:   in.Size,
		Offset: pageOffset(in.Page, in.Size),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list messages", "box", box, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListMessagesOutput{
		Page:     max(in.Page, 1),
		Size:     in.Size,
		Messages: msgs,
	}, nil
}

// ListAllMessages lists every sent message in the system for administrators.
func (s *Usecase) ListAllMessages(ctx context.Context, in ListMessagesInput) (*ListAllMessagesOutput, error) {
	ctx, span := s.startSpan(ctx, "ListAllMessages")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermMailboxMessagesAll, constant.PermActRead); err != nil {
		return nil, err
	}

	in.Size = normalizeSize(in.Size)
	msgs, total, err := s.repoDB.GetAllMessages(ctx, entity.MessageListFilter{
		Search: in.Search,
		Size:   in.Size,
		Offset: pageOffset(in.Page, in.Size),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list all messages", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListAllMessagesOutput{
		Page:     max(in.Page, 1),
		Size:     in.Size,
		Total:    total,
		Messages: msgs,
	}, nil
}
