package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
	AllDevices   bool   `json:"all_devices"`
}

type ActivationRequestRequest struct {
	Email string `json:"email"`
}

type ActivationRequestResponse struct{}

func (ActivationRequestResponse) Message() string {
	return "If an inactive account with that email exists, we have sent an activation link."
}

type ActivationConfirmRequest struct {
	ChallengeToken string `json:"challenge_token"`
}

type ActivationConfirmResponse struct{}

func (ActivationConfirmResponse) Message() string {
	return "Account activated. You can now log in."
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type ProfilePermissionsResponse struct {
	Permissions map[string][]string `json:"permissions"`
}

type ProfileResponse struct {
	ID                int64      `json:"id,string"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	AvatarURL         string     `json:"avatar_url"`
	Status            string     `json:"status"`
	IsActive          bool       `json:"is_active"`
	Roles             []string   `json:"roles"`
	PasswordChangedAt *time.Time `json:"password_changed_at"`
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u entity.User) UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Status:    u.Status.String(),
		IsActive:  u.Status == entity.UserStatusActive,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UserCreateRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles"`
	IsActive bool     `json:"is_active"`
}

type UserCreateResponse struct {
	User UserResponse `json:"user"`
}

func (UserCreateResponse) StatusCode() int { return http.StatusCreated }

type UserUpdateRequest struct {
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password,omitempty"`
	FullName string   `json:"full_name,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
}

type UserToggleStatusResponse struct {
	Status   string `json:"status"`
	IsActive bool   `json:"is_active"`
}

func (UserToggleStatusResponse) Message() string {
	return "User status toggled successfully."
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r UsersResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}

type UserDetailResponse struct {
	User UserResponse `json:"user"`
}

type RolePermissionRequest struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

type RolePermissionResponse struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

type RolePermissionsResponse struct {
	Role        string                   `json:"role"`
	Permissions []RolePermissionResponse `json:"permissions"`
}

func (RolePermissionsResponse) Message() string {
	return "Role permissions retrieved successfully."
}
