package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type UserDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

func errUserNotFound() error {
	return goerror.NewBusiness("user not found", goerror.CodeNotFound)
}

func (s *Usecase) UserDetail(ctx context.Context, in UserDetailInput) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "UserDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActRead); err != nil {
		return nil, err
	}

	return s.managedUser(ctx, in.ID, false)
}

// managedUser loads the account an administrator is acting on.
func (s *Usecase) managedUser(ctx context.Context, userID int64, includeDeleted bool) (*entity.User, error) {
	user, err := s.repoDB.GetUserByID(ctx, userID, includeDeleted)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		slog.WarnContext(ctx, "managed user not found", "user_id", userID)
		return nil, errUserNotFound()
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", userID, "error", err)
		return nil, goerror.NewServer(err)
	}
	return user, nil
}
