package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type ActivationRequestInput struct {
	Email string `validate:"required,email"`
}

type ActivationConfirmInput struct {
	ChallengeToken string `validate:"required"`
}

// ActivationRequest issues an activation link for an unverified account. The
// answer is the same whether or not the email belongs to such an account.
func (s *Usecase) ActivationRequest(ctx context.Context, in ActivationRequestInput) error {
	ctx, span := s.startSpan(ctx, "ActivationRequest")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email, false)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "email not registered for activation", "email", in.Email)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if user.Status != entity.UserStatusUnverified {
		slog.WarnContext(ctx, "activation requested for non unverified account", "user_id", user.ID, "status", user.Status.String())
		return nil
	}

	cToken := s.oid.Generate()
	cTokenHash, err := s.hmac.Hash(cToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash token challange", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.CreateChallenge(ctx, entity.Challenge{
		ID:        s.uid.Generate(),
		UserID:    user.ID,
		Token:     string(cTokenHash),
		Purpose:   entity.ChallengePurposeActivation,
		ExpiresAt: s.clock.Now().Add(s.cfg.GetHour("modules.identity.activation_ttl_hours")),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create activation challenge", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserActivation(ctx, UserActivationEvent{
		UserID:         user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		ChallengeToken: cToken,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user activation", "user_id", user.ID, "error", err)
	}

	return nil
}

func (s *Usecase) ActivationConfirm(ctx context.Context, in ActivationConfirmInput) error {
	ctx, span := s.startSpan(ctx, "ActivationConfirm")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	cTokenHash, err := s.hmac.Hash(in.ChallengeToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash token challange", "error", err)
		return goerror.NewServer(err)
	}

	cu, err := s.repoDB.GetChallengeUserByTokenPurpose(ctx, string(cTokenHash), entity.ChallengePurposeActivation)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "activation challenge not found")
		return goerror.NewBusiness("invalid activation token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get challange user by token purpose", "error", err)
		return goerror.NewServer(err)
	}

	if s.clock.Now().After(cu.ChallengeExpiresAt) {
		slog.WarnContext(ctx, "activation challenge is expired", "challenge_id", cu.ChallengeID)
		return goerror.NewBusiness("invalid activation token", goerror.CodeUnauthorized)
	}

	switch cu.UserStatus.Ensure() {
	case entity.UserStatusActive:
		if err := s.repoDB.DeleteChallenge(ctx, cu.ChallengeID); err != nil {
			slog.ErrorContext(ctx, "failed to repo delete challenge by id", "challenge_id", cu.ChallengeID, "error", err)
			return goerror.NewServer(err)
		}

		return nil

	case entity.UserStatusInactive:
		slog.WarnContext(ctx, "activation for deactivated account", "user_id", cu.UserID)
		return goerror.NewBusiness("account is deactivated", goerror.CodeForbidden)

	case entity.UserStatusUnverified:
		if err := s.repoDB.ActivateUser(ctx, entity.ActivateUser{
			ChallengeID: cu.ChallengeID,
			UserID:      cu.UserID,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to repo activate user", "user_id", cu.UserID, "challenge_id", cu.ChallengeID, "error", err)
			return goerror.NewServer(err)
		}

		return nil

	default:
		slog.WarnContext(ctx, "unknown user status", "user_id", cu.UserID, "status", cu.UserStatus.String())
		return goerror.NewBusiness("account status is unrecognized", goerror.CodeForbidden)
	}
}
