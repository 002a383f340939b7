package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type UserUpdateInput struct {
	ID       int64    `validate:"required,gt=0"`
	Email    string   `validate:"omitempty,email"`
	Password string   `validate:"omitempty,password"`
	FullName string   `validate:"omitempty,min=3,max=100,alphaspace"`
	Roles    []string `validate:"omitempty,min=1,dive,oneof=ADMIN LECTURER STUDENT"`
	IsActive *bool
}

func (s *Usecase) UserUpdate(ctx context.Context, in UserUpdateInput) error {
	ctx, span := s.startSpan(ctx, "UserUpdate")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActUpdate)
	if err != nil {
		return err
	}

	user, err := s.managedUser(ctx, in.ID, false)
	if err != nil {
		return err
	}

	if in.Email != "" && in.Email != user.Email {
		_, err := s.repoDB.GetUserByEmail(ctx, in.Email, true)
		if err == nil {
			slog.WarnContext(ctx, "user account is already exists", "email", in.Email)
			return errEmailTaken()
		}
		if !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
			return goerror.NewServer(err)
		}
	}

	var newHash string
	if in.Password != "" {
		hash, err := s.bcrypt.Hash(in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
			return goerror.NewServer(err)
		}
		newHash = string(hash)
	}

	patch := entity.PatchUser{
		ID:        user.ID,
		Email:     in.Email,
		FullName:  in.FullName,
		UpdatedBy: clm.UserID,
	}
	if in.FullName != "" {
		patch.AvatarURL = defaultAvatarURL(in.FullName)
	}
	if len(in.Roles) > 0 {
		patch.Roles = lo.Uniq(in.Roles)
	}
	if in.IsActive != nil {
		patch.Status = entity.UserStatusInactive
		if *in.IsActive {
			patch.Status = entity.UserStatusActive
		}
	}

	err = s.repoDB.PatchUser(ctx, patch, newHash)
	if errors.Is(err, goerror.ErrConflict) {
		return errEmailTaken()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo patch user", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
