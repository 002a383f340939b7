package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

type ProfileUpdateInput struct {
	FullName string `validate:"required,min=3,max=100,alphaspace"`
}

// ProfileUpdate renames the caller and returns the refreshed profile. Runs of
// whitespace collapse to a single space; an unchanged name skips the write.
func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	in.FullName = strings.Join(strings.Fields(in.FullName), " ")
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.FullName != in.FullName {
		if err := s.repoDB.UpdateUserProfile(ctx, user.ID, in.FullName); err != nil {
			slog.ErrorContext(ctx, "failed to repo update user profile", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
		user.FullName = in.FullName
	}
	return profileOf(user), nil
}
