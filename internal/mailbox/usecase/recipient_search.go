package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

const searchLimit int32 = 10

type SearchRecipientsInput struct {
	Term string `validate:"max=100"`
}

type SearchRecipientsOutput struct {
	Users  []entity.User
	Groups []entity.GroupSummary
}

// SearchRecipients suggests users and groups for the compose form. Students
// can only address staff, so their user results are limited to admins and lecturers.
func (s *Usecase) SearchRecipients(ctx context.Context, in SearchRecipientsInput) (*SearchRecipientsOutput, error) {
	ctx, span := s.startSpan(ctx, "SearchRecipients")
	defer span.End()

	in.Term = strings.TrimSpace(in.Term)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	out := &SearchRecipientsOutput{Users: []entity.User{}, Groups: []entity.GroupSummary{}}
	if in.Term == "" {
		return out, nil
	}

	var roles []string
	if !clm.HasAnyRole(constant.RoleAdmin, constant.RoleLecturer) {
		roles = []string{constant.RoleAdmin, constant.RoleLecturer}
	}

	users, err := s.repoDB.SearchUsers(ctx, in.Term, roles, searchLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo search users", "term", in.Term, "error", err)
		return nil, goerror.NewServer(err)
	}

	groups, err := s.repoDB.SearchGroups(ctx, in.Term, searchLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo search groups", "term", in.Term, "error", err)
		return nil, goerror.NewServer(err)
	}

	out.Users = users
	out.Groups = groups
	return out, nil
}
