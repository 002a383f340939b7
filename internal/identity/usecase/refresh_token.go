package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

func errRefreshRejected() error {
	return goerror.NewBusiness("invalid or expired refresh token", goerror.CodeUnauthorized)
}

// RefreshToken exchanges a refresh token for a new pair. Each refresh token
// is single use; presenting one that was already rotated revokes every
// session of its owner.
func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*RefreshTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	presented, err := s.hmac.Hash(in.RefreshToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash presented refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	rt, err := s.repoDB.GetUserRefreshToken(ctx, string(presented))
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "refresh token not found")
		return nil, errRefreshRejected()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.checkRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	access, err := s.jwt.Generate(rt.UserID, rt.UserEmail, rt.UserRoles)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign access token", "user_id", rt.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	next := s.oid.Generate()
	nextHash, err := s.hmac.Hash(next)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash next refresh token", "error", err)
		return nil, goerror.NewServer(err)
	}

	err = s.repoDB.RotateRefreshToken(ctx, entity.RotateRefreshToken{
		NewID:        s.uid.Generate(),
		OldID:        rt.RefreshID,
		UserID:       rt.UserID,
		NewToken:     string(nextHash),
		NewExpiresAt: s.clock.Now().Add(s.cfg.GetDay("modules.identity.refresh_token_ttl_days")),
	})
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		// lost a race with a concurrent refresh or logout
		slog.WarnContext(ctx, "refresh token rotated concurrently", "refresh_token_id", rt.RefreshID)
		return nil, errRefreshRejected()
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo rotate refresh token", "refresh_token_id", rt.RefreshID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RefreshTokenOutput{AccessToken: access, RefreshToken: next}, nil
}

func (s *Usecase) checkRefreshToken(ctx context.Context, rt *entity.UserRefreshToken) error {
	switch {
	case rt.RefreshRevoked && rt.RefreshReplacedByTokenID != nil:
		slog.WarnContext(ctx, "refresh token reuse detected, revoking all sessions", "user_id", rt.UserID)
		if err := s.repoDB.RevokeAllRefreshToken(ctx, rt.UserID); err != nil {
			slog.ErrorContext(ctx, "failed to repo revoke all refresh tokens", "user_id", rt.UserID, "error", err)
		}
		return goerror.NewBusiness("token reuse detected, please log in again", goerror.CodeForbidden)

	case rt.RefreshRevoked:
		slog.WarnContext(ctx, "refresh token is revoked", "refresh_token_id", rt.RefreshID)
		return errRefreshRejected()

	case !s.clock.Now().Before(rt.RefreshExpiresAt):
		slog.WarnContext(ctx, "refresh token is expired", "refresh_token_id", rt.RefreshID)
		return errRefreshRejected()
	}

	return s.ensureUserStatusAllowed(ctx, rt.UserID, rt.UserStatus)
}
