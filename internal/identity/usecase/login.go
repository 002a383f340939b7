package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
}

func errBadCredentials() error {
	return goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
}

// Login exchanges an email and password for a token pair. Only active
// accounts may sign in.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.checkCredentials(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	access, refresh, err := s.issueTokens(ctx, user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "user signed in", "user_id", user.ID)

	return &LoginOutput{AccessToken: access, RefreshToken: refresh}, nil
}

// checkCredentials runs a bcrypt comparison even for unknown emails so both
// rejections take about the same time.
func (s *Usecase) checkCredentials(ctx context.Context, email, password string) (*entity.UserLoginInfo, error) {
	user, err := s.repoDB.GetUserLoginInfo(ctx, email)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		_ = s.bcrypt.Verify(s.decoyHash(), password)
		slog.WarnContext(ctx, "login for unknown email", "email", email)
		return nil, errBadCredentials()
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get user login info", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, password) {
		slog.WarnContext(ctx, "login password mismatch", "user_id", user.ID)
		return nil, errBadCredentials()
	}
	return user, nil
}
