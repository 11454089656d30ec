package handler

import (
	"fmt"
	"strconv"

	"loyalty-rewards/internal/adapter/http/dto"
	"loyalty-rewards/internal/adapter/http/middleware"
	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"
	"loyalty-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the signed-in user's profile and QR code.
type AccountHandler struct {
	authSvc  ports.AuthService
	tokenSvc ports.TokenService
	qrSvc    ports.QRService
}

func NewAccountHandler(authSvc ports.AuthService, tokenSvc ports.TokenService, qrSvc ports.QRService) *AccountHandler {
	return &AccountHandler{authSvc: authSvc, tokenSvc: tokenSvc, qrSvc: qrSvc}
}

// Me handles GET /api/v1/me.
func (h *AccountHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	user, err := h.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// UpdateProfile handles PUT /api/v1/me. The response carries a fresh token
// so the account_type claim follows the stored account.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, req.Name, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	token, expiry, err := h.tokenSvc.Generate(user.ID, user.AccountType)
	if err != nil {
		response.Error(c, apperror.InternalError(fmt.Errorf("generate token: %w", err)))
		return
	}
	response.OK(c, dto.ProfileResponse{
		UserResponse: dto.NewUserResponse(user),
		Token:        token,
		Expiry:       expiry.Unix(),
	})
}

// UpdatePhone handles PUT /api/v1/me/phone.
func (h *AccountHandler) UpdatePhone(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	user, err := h.authSvc.UpdatePhone(c.Request.Context(), userID, req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// UpdatePreferences handles PUT /api/v1/me/preferences.
func (h *AccountHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.authSvc.UpdatePreferences(c.Request.Context(), userID, domain.Preferences{
		Theme:    domain.ThemeMode(req.Theme),
		Language: req.Language,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(user))
}

// QRCode handles GET /api/v1/me/qr?size=N.
func (h *AccountHandler) QRCode(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(c, apperror.Validation("size must be a non-negative integer").WithField("size"))
			return
		}
		size = n
	}

	user, err := h.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	png, err := h.qrSvc.Render(domain.QRPayload{UserID: user.ID.String(), Email: user.Email}, size)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.PNG(c, png)
}
