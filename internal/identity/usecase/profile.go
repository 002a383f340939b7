package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type ProfileOutput struct {
	ID                int64
	Email             string
	FullName          string
	AvatarURL         string
	Status            string
	IsActive          bool
	Roles             []string
	PasswordChangedAt *time.Time
}

func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

func profileOf(user *entity.User) *ProfileOutput {
	return &ProfileOutput{
		ID:                user.ID,
		Email:             user.Email,
		FullName:          user.FullName,
		AvatarURL:         user.AvatarURL,
		Status:            user.Status.String(),
		IsActive:          user.Status == entity.UserStatusActive,
		Roles:             user.Roles,
		PasswordChangedAt: user.PasswordChangedAt,
	}
}

// currentUser loads the caller's account and rejects it unless it is active.
func (s *Usecase) currentUser(ctx context.Context) (*entity.User, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID, false)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return nil, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	return user, nil
}
