package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type UserListInput struct {
	Search   string // value already trimmed
	Statuses []string
	Role     string `validate:"omitempty,oneof=ADMIN LECTURER STUDENT"`
	Size     int32
	Page     int32
}

type UserListOutput struct {
	Page  int32
	Size  int32
	Total int64
	Users []entity.User
}

func (s *Usecase) UserList(ctx context.Context, in UserListInput) (*UserListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActRead); err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}

	users, count, err := s.repoDB.GetUserList(ctx, entity.UserListFilter{
		Search:   in.Search,
		Statuses: entity.StatusFilter(in.Statuses),
		Role:     in.Role,
		Size:     in.Size,
		Offset:   (max(in.Page, 1) - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list users", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserListOutput{
		Page:  max(in.Page, 1),
		Size:  in.Size,
		Total: count,
		Users: users,
	}, nil
}
