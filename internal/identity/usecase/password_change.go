package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type PasswordChangeInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,password"`
}

// PasswordChange swaps the caller's password and signs every session out.
// The store stamps password_changed_at with the new hash.
func (s *Usecase) PasswordChange(ctx context.Context, in PasswordChangeInput) error {
	ctx, span := s.startSpan(ctx, "PasswordChange")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}
	if in.CurrentPassword == in.NewPassword {
		return goerror.NewInvalidInput(nil, "new_password", "new password must differ from the current one")
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	cred, err := s.repoDB.GetUserCredentialInfo(ctx, clm.UserID)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		slog.WarnContext(ctx, "credential owner not found", "user_id", clm.UserID)
		return goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo get user credential info", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, cred.ID, cred.Status); err != nil {
		return err
	}
	if !s.bcrypt.Verify(cred.Password, in.CurrentPassword) {
		slog.WarnContext(ctx, "current password mismatch", "user_id", cred.ID)
		return goerror.NewBusiness("invalid password", goerror.CodeUnauthorized)
	}

	digest, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", cred.ID, "error", err)
		return goerror.NewServer(err)
	}
	if err := s.repoDB.UpdateUserCredential(ctx, cred.ID, string(digest)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user credential", "user_id", cred.ID, "error", err)
		return goerror.NewServer(err)
	}

	// the password is already changed; a failed revoke only leaves old sessions alive until expiry
	if err := s.repoDB.RevokeAllRefreshToken(ctx, cred.ID); err != nil {
		slog.WarnContext(ctx, "failed to repo revoke sessions after password change", "user_id", cred.ID, "error", err)
	}
	return nil
}
