package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type DeleteDraftInput struct {
	DraftID int64 `validate:"required,gt=0"`
}

func (s *Usecase) DeleteDraft(ctx context.Context, in DeleteDraftInput) error {
	ctx, span := s.startSpan(ctx, "DeleteDraft")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if _, err := s.ownedDraft(ctx, clm.UserID, in.DraftID); err != nil {
		return err
	}

	if err := s.persist(ctx, func(ctx context.Context, uow UnitOfWork) error {
		return uow.DeleteMessage(ctx, in.DraftID)
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return errMessageNotFound()
		}
		slog.ErrorContext(ctx, "failed to repo delete draft", "draft_id", in.DraftID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
