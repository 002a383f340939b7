package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type LogoutInput struct {
	RefreshToken string
	// AllDevices revokes every session of the token's owner.
	AllDevices bool
}

// Logout revokes the given refresh token. Blank or unknown tokens succeed so
// the call can be repeated.
func (s *Usecase) Logout(ctx context.Context, in LogoutInput) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	raw := strings.TrimSpace(in.RefreshToken)
	if raw == "" {
		return nil
	}

	digest, err := s.hmac.Hash(raw)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash refresh token", "error", err)
		return goerror.NewServer(err)
	}
	tokenHash := string(digest)

	if !in.AllDevices {
		if err := s.repoDB.RevokeRefreshToken(ctx, tokenHash); err != nil {
			slog.ErrorContext(ctx, "failed to repo revoke refresh token", "error", err)
			return goerror.NewServer(err)
		}
		return nil
	}

	rt, err := s.repoDB.GetUserRefreshToken(ctx, tokenHash)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get refresh token", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.RevokeAllRefreshToken(ctx, rt.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to repo revoke all refresh token", "user_id", rt.UserID, "error", err)
		return goerror.NewServer(err)
	}
	slog.InfoContext(ctx, "user signed out of all devices", "user_id", rt.UserID)
	return nil
}
