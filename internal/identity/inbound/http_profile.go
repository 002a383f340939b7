package inbound

import (
	"bufio"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shandysiswandi/gomailbox/internal/identity/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

// sniffLen matches the default read limit of mimetype.Detect.
const sniffLen = 3072

// Profile returns the caller's own account.
// @Summary My profile
// @Tags Identity, Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Account not active"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	out, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}
	return toProfileResponse(out), nil
}

func toProfileResponse(out *usecase.ProfileOutput) ProfileResponse {
	resp := ProfileResponse{
		ID:                out.ID,
		Email:             out.Email,
		FullName:          out.FullName,
		AvatarURL:         out.AvatarURL,
		Status:            out.Status,
		IsActive:          out.IsActive,
		Roles:             out.Roles,
		PasswordChangedAt: out.PasswordChangedAt,
	}
	if resp.Roles == nil {
		resp.Roles = []string{}
	}
	return resp
}

// ProfileUpdate renames the caller and echoes the updated profile.
// @Summary Update my profile
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept json
// @Param request body UpdateProfileRequest true "New display name"
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile [put]
func (h *HTTPEndpoint) ProfileUpdate(r *router.Request) (any, error) {
	var req UpdateProfileRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	out, err := h.uc.ProfileUpdate(r.Context(), usecase.ProfileUpdateInput{FullName: req.FullName})
	if err != nil {
		return nil, err
	}
	return toProfileResponse(out), nil
}

// ProfileUpdateAvatar streams the "avatar" form file to object storage. The
// content type is sniffed from the first bytes, not taken from the client.
// @Summary Upload my avatar
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} router.successResponse{data=AvatarResponse} "Public avatar URL"
// @Failure 400 {object} router.errorResponse "Missing file or not multipart"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Unsupported image type or too large"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile/avatar [put]
func (h *HTTPEndpoint) ProfileUpdateAvatar(r *router.Request) (any, error) {
	ctx := r.Context()

	part, err := r.StreamSingleFile("avatar")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := part.Close(); err != nil {
			slog.WarnContext(ctx, "failed to close avatar part", "error", err)
		}
	}()

	br := bufio.NewReaderSize(part, sniffLen)
	head, err := br.Peek(sniffLen)
	if len(head) == 0 && err != nil {
		return nil, goerror.NewInvalidFormat("Avatar file is empty")
	}

	url, err := h.uc.ProfileUpdateAvatar(ctx, usecase.ProfileUpdateAvatarInput{
		File:        br,
		ContentType: mimetype.Detect(head).String(),
	})
	if err != nil {
		return nil, err
	}
	return AvatarResponse{AvatarURL: url}, nil
}

// ProfilePermissions lists what the caller may do, merged across roles.
// @Summary My permissions
// @Tags Identity, Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfilePermissionsResponse} "Actions keyed by object"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/profile/permissions [get]
func (h *HTTPEndpoint) ProfilePermissions(r *router.Request) (any, error) {
	perms, err := h.uc.ProfilePermissions(r.Context())
	if err != nil {
		return nil, err
	}
	return ProfilePermissionsResponse{Permissions: perms}, nil
}

// PasswordChange sets a new password after checking the current one.
// @Summary Change my password
// @Tags Identity, Profile
// @Security BearerAuth
// @Accept json
// @Param request body PasswordChangeRequest true "Current and new password"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Unauthorized or wrong current password"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/change [post]
func (h *HTTPEndpoint) PasswordChange(r *router.Request) (any, error) {
	var req PasswordChangeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	return nil, h.uc.PasswordChange(r.Context(), usecase.PasswordChangeInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
}
