package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type UserToggleStatusInput struct {
	ID int64 `validate:"required,gt=0"`
}

type UserToggleStatusOutput struct {
	Status entity.UserStatus
}

func (s *Usecase) UserToggleStatus(ctx context.Context, in UserToggleStatusInput) (*UserToggleStatusOutput, error) {
	ctx, span := s.startSpan(ctx, "UserToggleStatus")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActUpdate)
	if err != nil {
		return nil, err
	}

	if clm.UserID == in.ID {
		return nil, goerror.NewBusiness("cannot change status of your own account", goerror.CodeForbidden)
	}

	user, err := s.managedUser(ctx, in.ID, false)
	if err != nil {
		return nil, err
	}

	next := user.Status.Toggled()

	// the old status guards against a concurrent toggle
	err = s.repoDB.UpdateUserStatus(ctx, user.ID, user.Status, next, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user status changed concurrently", "user_id", user.ID)
		return nil, goerror.NewBusiness("user status was changed by another request", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update user status", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserToggleStatusOutput{Status: next}, nil
}
