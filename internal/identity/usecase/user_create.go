package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type UserCreateInput struct {
	Email    string   `validate:"required,email"`
	Password string   `validate:"required,password"`
	FullName string   `validate:"required,min=3,max=100,alphaspace"`
	Roles    []string `validate:"required,min=1,dive,oneof=ADMIN LECTURER STUDENT"`
	IsActive bool
}

// UserCreate provisions an account. Accounts created inactive start unverified
// and are activated by the user through the activation flow.
func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActCreate)
	if err != nil {
		return nil, err
	}

	_, err = s.repoDB.GetUserByEmail(ctx, in.Email, true)
	if err == nil {
		slog.WarnContext(ctx, "user account is already exists", "email", in.Email)
		return nil, errEmailTaken()
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	status := entity.UserStatusUnverified
	if in.IsActive {
		status = entity.UserStatusActive
	}

	newUser := entity.NewUser{
		ID:        s.uid.Generate(),
		Email:     in.Email,
		FullName:  in.FullName,
		AvatarURL: defaultAvatarURL(in.FullName),
		Status:    status,
		Roles:     lo.Uniq(in.Roles),
		CreatedBy: clm.UserID,
	}

	err = s.repoDB.NewUser(ctx, newUser, string(hashedPassword))
	if errors.Is(err, goerror.ErrConflict) {
		return nil, errEmailTaken()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create new user", "email", newUser.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	return &entity.User{
		ID:        newUser.ID,
		Email:     newUser.Email,
		FullName:  newUser.FullName,
		AvatarURL: newUser.AvatarURL,
		Status:    newUser.Status,
		Roles:     newUser.Roles,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func errEmailTaken() error {
	return goerror.NewBusiness("user account with that email already exists", goerror.CodeConflict)
}

func defaultAvatarURL(fullName string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(fullName)
}
