package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/identity/entity"
	"github.com/shandysiswandi/gomailbox/internal/identity/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

// UserList pages through accounts.
// @Summary List accounts
// @Description Deleted accounts are never listed. status may repeat.
// @Tags Identity, Users
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring of name or email"
// @Param status query []string false "1 unverified, 2 active, 3 inactive"
// @Param role query string false "ADMIN, LECTURER or STUDENT"
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=UsersResponse} "Accounts with paging meta"
// @Failure 400 {object} router.errorResponse "Non-numeric page or size"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/users [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.UserList(r.Context(), usecase.UserListInput{
		Search:   r.GetQuery("search"),
		Statuses: r.GetQueries("status"),
		Role:     r.GetQuery("role"),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	return UsersResponse{
		Users: lo.Map(out.Users, func(u entity.User, _ int) UserResponse { return newUserResponse(u) }),
		total: out.Total,
		page:  out.Page,
		size:  out.Size,
	}, nil
}

// UserDetail fetches one account.
// @Summary Get account
// @Tags Identity, Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} router.successResponse{data=UserDetailResponse} "Account"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "No such account"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/users/{id} [get]
func (h *HTTPEndpoint) UserDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	u, err := h.uc.UserDetail(r.Context(), usecase.UserDetailInput{ID: id})
	if err != nil {
		return nil, err
	}
	return UserDetailResponse{User: newUserResponse(*u)}, nil
}

// UserCreate provisions an account.
// @Summary Create account
// @Description Accounts created with is_active=false start unverified and need the activation flow.
// @Tags Identity, Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UserCreateRequest true "Account"
// @Success 201 {object} router.successResponse{data=UserCreateResponse} "Created account"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 409 {object} router.errorResponse "Email taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/users [post]
func (h *HTTPEndpoint) UserCreate(r *router.Request) (any, error) {
	var req UserCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	u, err := h.uc.UserCreate(r.Context(), usecase.UserCreateInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    req.Roles,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return UserCreateResponse{User: newUserResponse(*u)}, nil
}

// UserUpdate changes the fields present in the body. roles replaces the
// whole role set.
// @Summary Update account
// @Tags Identity, Users
// @Security BearerAuth
// @Accept json
// @Param id path string true "User ID"
// @Param request body UserUpdateRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "No such account"
// @Failure 409 {object} router.errorResponse "Email taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/users/{id} [put]
func (h *HTTPEndpoint) UserUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}
	var req UserUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.UserUpdate(r.Context(), usecase.UserUpdateInput{
		ID:       id,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Roles:    req.Roles,
		IsActive: req.IsActive,
	})
}

// UserDelete soft deletes an account and revokes its sessions.
// @Summary Delete account
// @Tags Identity, Users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "No such account"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/users/{id} [delete]
func (h *HTTPEndpoint) UserDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}
	return nil, h.uc.UserDelete(r.Context(), usecase.UserDeleteInput{ID: id})
}

// UserToggleStatus flips an account between active and inactive.
// @Summary Toggle account status
// @Tags Identity, Users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} router.successResponse{data=UserToggleStatusResponse} "Status after the flip"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "No such account"
// @Failure 409 {object} router.errorResponse "Status changed concurrently"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/users/{id}/toggle-status [post]
func (h *HTTPEndpoint) UserToggleStatus(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.UserToggleStatus(r.Context(), usecase.UserToggleStatusInput{ID: id})
	if err != nil {
		return nil, err
	}
	return UserToggleStatusResponse{
		Status:   out.Status.String(),
		IsActive: out.Status == entity.UserStatusActive,
	}, nil
}
