package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type UserDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

// UserDelete soft deletes an account; the store revokes its refresh tokens in
// the same transaction. Repeating the call on a deleted account is a no-op.
// Mail the account already sent or received stays in place.
func (s *Usecase) UserDelete(ctx context.Context, in UserDeleteInput) error {
	ctx, span := s.startSpan(ctx, "UserDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActDelete)
	if err != nil {
		return err
	}
	if clm.UserID == in.ID {
		return goerror.NewBusiness("cannot delete your own account", goerror.CodeForbidden)
	}

	user, err := s.managedUser(ctx, in.ID, true)
	if err != nil {
		return err
	}
	if user.DeletedAt != nil {
		slog.InfoContext(ctx, "user already deleted", "user_id", user.ID)
		return nil
	}

	if err := s.repoDB.MarkUserDeleted(ctx, user.ID, clm.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to repo mark user deleted", "user_id", user.ID, "by_user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}
	slog.InfoContext(ctx, "user deleted", "user_id", user.ID, "by_user_id", clm.UserID)
	return nil
}
