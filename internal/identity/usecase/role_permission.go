package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type RolePermissionListInput struct {
	Role string `validate:"required,oneof=ADMIN LECTURER STUDENT"`
}

type RolePermission struct {
	Object string
	Action string
}

type RolePermissionInput struct {
	Role   string `validate:"required,oneof=ADMIN LECTURER STUDENT"`
	Object string `validate:"required,max=100"`
	Action string `validate:"required,oneof=* read create update delete"`
}

// RolePermissionList returns the policies granted directly to a role,
// sorted by object then action.
func (s *Usecase) RolePermissionList(ctx context.Context, in RolePermissionListInput) ([]RolePermission, error) {
	ctx, span := s.startSpan(ctx, "RolePermissionList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtRoles, constant.PermActRead); err != nil {
		return nil, err
	}

	policies, err := s.enforcer.GetFilteredPolicy(0, in.Role)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get role policies", "role", in.Role, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := make([]RolePermission, 0, len(policies))
	for _, p := range policies {
		if len(p) < 3 {
			continue
		}
		out = append(out, RolePermission{Object: p[1], Action: p[2]})
	}
	slices.SortFunc(out, func(a, b RolePermission) int {
		if c := strings.Compare(a.Object, b.Object); c != 0 {
			return c
		}
		return strings.Compare(a.Action, b.Action)
	})

	return out, nil
}

// RolePermissionGrant adds a policy. The change is persisted and broadcast
// to the other instances by the enforcer.
func (s *Usecase) RolePermissionGrant(ctx context.Context, in RolePermissionInput) error {
	ctx, span := s.startSpan(ctx, "RolePermissionGrant")
	defer span.End()

	in.Object = strings.TrimSpace(in.Object)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtRoles, constant.PermActCreate)
	if err != nil {
		return err
	}

	added, err := s.enforcer.AddPolicy(in.Role, in.Object, in.Action)
	if err != nil {
		slog.ErrorContext(ctx, "failed to add role policy", "role", in.Role, "obj", in.Object, "act", in.Action, "error", err)
		return goerror.NewServer(err)
	}
	if !added {
		return goerror.NewBusiness("permission already granted", goerror.CodeConflict)
	}

	slog.InfoContext(ctx, "role permission granted", "by", clm.UserID, "role", in.Role, "obj", in.Object, "act", in.Action)
	return nil
}

// RolePermissionRevoke removes a policy. The administrator wildcard cannot
// be revoked.
func (s *Usecase) RolePermissionRevoke(ctx context.Context, in RolePermissionInput) error {
	ctx, span := s.startSpan(ctx, "RolePermissionRevoke")
	defer span.End()

	in.Object = strings.TrimSpace(in.Object)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtRoles, constant.PermActDelete)
	if err != nil {
		return err
	}

	if in.Role == constant.RoleAdmin && in.Object == "*" && in.Action == "*" {
		return goerror.NewBusiness("administrator access cannot be revoked", goerror.CodeForbidden)
	}

	removed, err := s.enforcer.RemovePolicy(in.Role, in.Object, in.Action)
	if err != nil {
		slog.ErrorContext(ctx, "failed to remove role policy", "role", in.Role, "obj", in.Object, "act", in.Action, "error", err)
		return goerror.NewServer(err)
	}
	if !removed {
		return goerror.NewBusiness("permission not found", goerror.CodeNotFound)
	}

	slog.InfoContext(ctx, "role permission revoked", "by", clm.UserID, "role", in.Role, "obj", in.Object, "act", in.Action)
	return nil
}
