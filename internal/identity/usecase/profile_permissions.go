package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
)

// ProfilePermissions returns the caller's granted actions keyed by object,
// merged across all of the caller's roles.
func (s *Usecase) ProfilePermissions(ctx context.Context) (map[string][]string, error) {
	ctx, span := s.startSpan(ctx, "ProfilePermissions")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	permissions := make(map[string][]string)
	for _, role := range clm.Roles {
		policies, err := s.enforcer.GetImplicitPermissionsForUser(role)
		if err != nil {
			slog.ErrorContext(ctx, "failed to get role permissions", "role", role, "error", err)
			return nil, goerror.NewServer(err)
		}

		for _, policy := range policies {
			if len(policy) < 3 {
				continue
			}
			if !slices.Contains(permissions[policy[1]], policy[2]) {
				permissions[policy[1]] = append(permissions[policy[1]], policy[2])
			}
		}
	}

	return permissions, nil
}
