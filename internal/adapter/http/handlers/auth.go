package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapp/internal/adapter/http/dto"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/ports"
	"taskapp/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	tokenString, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		// Signing failures are configuration errors, not user mistakes.
		zap.L().Error("failed to issue token", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: tokenString, Username: req.Username})
}
