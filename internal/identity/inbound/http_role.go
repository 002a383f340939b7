package inbound

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gomailbox/internal/identity/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

func roleParam(r *router.Request) string {
	return strings.ToUpper(r.GetParam("role"))
}

// RolePermissionList lists the policies granted to a role.
// @Summary List role permissions
// @Tags Identity, Roles
// @Security BearerAuth
// @Produce json
// @Param role path string true "ADMIN, LECTURER or STUDENT"
// @Success 200 {object} router.successResponse{data=RolePermissionsResponse} "Object and action pairs"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 422 {object} router.errorResponse "Unknown role"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/roles/{role}/permissions [get]
func (h *HTTPEndpoint) RolePermissionList(r *router.Request) (any, error) {
	role := roleParam(r)
	perms, err := h.uc.RolePermissionList(r.Context(), usecase.RolePermissionListInput{Role: role})
	if err != nil {
		return nil, err
	}

	return RolePermissionsResponse{
		Role: role,
		Permissions: lo.Map(perms, func(p usecase.RolePermission, _ int) RolePermissionResponse {
			return RolePermissionResponse{Object: p.Object, Action: p.Action}
		}),
	}, nil
}

// RolePermissionGrant adds a policy to a role. Every instance reloads its
// policies through the database watcher.
// @Summary Grant role permission
// @Tags Identity, Roles
// @Security BearerAuth
// @Accept json
// @Param role path string true "ADMIN, LECTURER or STUDENT"
// @Param request body RolePermissionRequest true "Object and action"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 409 {object} router.errorResponse "Already granted"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/roles/{role}/permissions [post]
func (h *HTTPEndpoint) RolePermissionGrant(r *router.Request) (any, error) {
	var req RolePermissionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	return nil, h.uc.RolePermissionGrant(r.Context(), usecase.RolePermissionInput{
		Role:   roleParam(r),
		Object: req.Object,
		Action: req.Action,
	})
}

// RolePermissionRevoke removes a policy from a role.
// @Summary Revoke role permission
// @Tags Identity, Roles
// @Security BearerAuth
// @Param role path string true "ADMIN, LECTURER or STUDENT"
// @Param object query string true "Permission object"
// @Param action query string true "Permission action"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden or protected policy"
// @Failure 404 {object} router.errorResponse "Not granted"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/roles/{role}/permissions [delete]
func (h *HTTPEndpoint) RolePermissionRevoke(r *router.Request) (any, error) {
	return nil, h.uc.RolePermissionRevoke(r.Context(), usecase.RolePermissionInput{
		Role:   roleParam(r),
		Object: r.GetQuery("object"),
		Action: r.GetQuery("action"),
	})
}
