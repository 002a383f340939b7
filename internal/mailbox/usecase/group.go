package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/mailbox/entity"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/shared/constant"
)

type GroupDetailInput struct {
	GroupID int64 `validate:"required,gt=0"`
}

type GroupDetailOutput struct {
	ID      int64
	Name    string
	Members []entity.GroupMember
}

type GroupCreateInput struct {
	Name      string  `validate:"required,min=2,max=100"`
	MemberIDs []int64 `validate:"max=1000,dive,gt=0"`
}

type GroupMembersReplaceInput struct {
	GroupID   int64   `validate:"required,gt=0"`
	MemberIDs []int64 `validate:"max=1000,dive,gt=0"`
}

type GroupDeleteInput struct {
	GroupID int64 `validate:"required,gt=0"`
}

func errGroupNotFound() error {
	return goerror.NewBusiness("group not found", goerror.CodeNotFound)
}

func (s *Usecase) GroupDetail(ctx context.Context, in GroupDetailInput) (*GroupDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "GroupDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	group, err := s.repoDB.GetGroupByID(ctx, in.GroupID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errGroupNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get group", "group_id", in.GroupID, "error", err)
		return nil, goerror.NewServer(err)
	}

	members, err := s.repoDB.GetGroupMembers(ctx, in.GroupID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get group members", "group_id", in.GroupID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GroupDetailOutput{ID: group.ID, Name: group.Name, Members: members}, nil
}

func (s *Usecase) GroupCreate(ctx context.Context, in GroupCreateInput) (*entity.Group, error) {
	ctx, span := s.startSpan(ctx, "GroupCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermMailboxGroups, constant.PermActCreate); err != nil {
		return nil, err
	}

	group := entity.Group{
		ID:        s.uid.Generate(),
		Name:      in.Name,
		MemberIDs: lo.Uniq(in.MemberIDs),
	}

	err := s.repoDB.CreateGroup(ctx, group)
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "group name already exists", "name", in.Name)
		return nil, goerror.NewBusiness("group with that name already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create group", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &group, nil
}

func (s *Usecase) GroupMembersReplace(ctx context.Context, in GroupMembersReplaceInput) error {
	ctx, span := s.startSpan(ctx, "GroupMembersReplace")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermMailboxGroups, constant.PermActUpdate); err != nil {
		return err
	}

	err := s.repoDB.ReplaceGroupMembers(ctx, in.GroupID, lo.Uniq(in.MemberIDs))
	if errors.Is(err, goerror.ErrNotFound) {
		return errGroupNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo replace group members", "group_id", in.GroupID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) GroupDelete(ctx context.Context, in GroupDeleteInput) error {
	ctx, span := s.startSpan(ctx, "GroupDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermMailboxGroups, constant.PermActDelete); err != nil {
		return err
	}

	err := s.repoDB.DeleteGroup(ctx, in.GroupID)
	if errors.Is(err, goerror.ErrNotFound) {
		return errGroupNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete group", "group_id", in.GroupID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
