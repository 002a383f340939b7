package inbound

import (
	"github.com/shandysiswandi/gomailbox/internal/identity/usecase"
	"github.com/shandysiswandi/gomailbox/internal/pkg/router"
)

// HTTPEndpoint adapts identity use cases to router handlers.
type HTTPEndpoint struct {
	uc uc
}

// Login exchanges campus credentials for a token pair.
// @Summary Sign in
// @Description Only active accounts can sign in. Unverified accounts must finish activation first.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Token pair"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Wrong email or password"
// @Failure 403 {object} router.errorResponse "Account unverified or deactivated"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Login(r.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, err
	}
	return TokenResponse{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

// RefreshToken rotates a refresh token.
// @Summary Rotate tokens
// @Description The presented refresh token is revoked and a new pair is issued.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} router.successResponse{data=TokenResponse} "Token pair"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Refresh token unknown, revoked or expired"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/refresh [post]
func (h *HTTPEndpoint) RefreshToken(r *router.Request) (any, error) {
	var req RefreshTokenRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.RefreshToken(r.Context(), usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return nil, err
	}
	return TokenResponse{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}, nil
}

// Logout revokes a refresh token, or every session of its owner when
// all_devices is set. Unknown tokens are ignored.
// @Summary Sign out
// @Tags Identity, Authentication
// @Accept json
// @Param request body LogoutRequest true "Refresh token"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/logout [post]
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	var req LogoutRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	return nil, h.uc.Logout(r.Context(), usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
		AllDevices:   req.AllDevices,
	})
}

// ActivationRequest mails an activation link. The response is the same
// whether or not the address belongs to an unverified account.
// @Summary Request activation link
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body ActivationRequestRequest true "Email"
// @Success 200 {object} router.successResponse{data=ActivationRequestResponse} "Accepted"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/activation/request [post]
func (h *HTTPEndpoint) ActivationRequest(r *router.Request) (any, error) {
	var req ActivationRequestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	if err := h.uc.ActivationRequest(r.Context(), usecase.ActivationRequestInput{Email: req.Email}); err != nil {
		return nil, err
	}
	return ActivationRequestResponse{}, nil
}

// ActivationConfirm redeems an activation token.
// @Summary Activate account
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body ActivationConfirmRequest true "Token from the activation email"
// @Success 200 {object} router.successResponse{data=ActivationConfirmResponse} "Activated"
// @Failure 400 {object} router.errorResponse "Malformed body"
// @Failure 401 {object} router.errorResponse "Token unknown or expired"
// @Failure 403 {object} router.errorResponse "Account deactivated"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/activation/confirm [post]
func (h *HTTPEndpoint) ActivationConfirm(r *router.Request) (any, error) {
	var req ActivationConfirmRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	if err := h.uc.ActivationConfirm(r.Context(), usecase.ActivationConfirmInput{ChallengeToken: req.ChallengeToken}); err != nil {
		return nil, err
	}
	return ActivationConfirmResponse{}, nil
}
