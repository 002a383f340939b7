package inbound

import (
	"context"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/identity/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	RefreshToken(ctx context.Context, in usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)
	Logout(ctx context.Context, in usecase.LogoutInput) error

	ActivationRequest(ctx context.Context, in usecase.ActivationRequestInput) error
	ActivationConfirm(ctx context.Context, in usecase.ActivationConfirmInput) error

	PasswordChange(ctx context.Context, in usecase.PasswordChangeInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) (*usecase.ProfileOutput, error)
	ProfileUpdateAvatar(ctx context.Context, in usecase.ProfileUpdateAvatarInput) (string, error)
	ProfilePermissions(ctx context.Context) (map[string][]string, error)

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserDetail(ctx context.Context, in usecase.UserDetailInput) (*entity.User, error)
	UserCreate(ctx context.Context, in usecase.UserCreateInput) (*entity.User, error)
	UserUpdate(ctx context.Context, in usecase.UserUpdateInput) error
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error
	UserToggleStatus(ctx context.Context, in usecase.UserToggleStatusInput) (*usecase.UserToggleStatusOutput, error)

	RolePermissionList(ctx context.Context, in usecase.RolePermissionListInput) ([]usecase.RolePermission, error)
	RolePermissionGrant(ctx context.Context, in usecase.RolePermissionInput) error
	RolePermissionRevoke(ctx context.Context, in usecase.RolePermissionInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Authentication
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/refresh", end.RefreshToken)
	r.POST("/api/v1/identity/logout", end.Logout)
	r.POST("/api/v1/identity/activation/request", end.ActivationRequest)
	r.POST("/api/v1/identity/activation/confirm", end.ActivationConfirm)

	// Profile (need authenticated)
	r.GET("/api/v1/identity/profile", end.Profile)
	r.PUT("/api/v1/identity/profile", end.ProfileUpdate)
	r.PUT("/api/v1/identity/profile/avatar", end.ProfileUpdateAvatar)
	r.GET("/api/v1/identity/profile/permissions", end.ProfilePermissions)
	r.POST("/api/v1/identity/password/change", end.PasswordChange)

	// User administration (need authenticated & authorization)
	r.GET("/api/v1/identity/users", end.UserList)
	r.GET("/api/v1/identity/users/:id", end.UserDetail)
	r.POST("/api/v1/identity/users", end.UserCreate)
	r.PUT("/api/v1/identity/users/:id", end.UserUpdate)
	r.DELETE("/api/v1/identity/users/:id", end.UserDelete)
	r.POST("/api/v1/identity/users/:id/toggle-status", end.UserToggleStatus)

	// Role permissions (need authenticated & authorization)
	r.GET("/api/v1/identity/roles/:role/permissions", end.RolePermissionList)
	r.POST("/api/v1/identity/roles/:role/permissions", end.RolePermissionGrant)
	r.DELETE("/api/v1/identity/roles/:role/permissions", end.RolePermissionRevoke)
}
