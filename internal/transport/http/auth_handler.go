package handlers

import (
	"fmt"
	"net/http"

	"github.com/waste3d/course-admin/internal/application/usecase"
	"github.com/waste3d/course-admin/internal/domain"
	"github.com/waste3d/course-admin/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	auth         *usecase.AuthUseCase
	cookieSecure bool
}

func NewAuthHandler(auth *usecase.AuthUseCase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	access, refresh, err := h.auth.Login(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		respondError(c, fmt.Errorf("%w: refresh token not found", domain.ErrInvalidCreds))
		return
	}

	access, refresh, err := h.auth.Refresh(c, refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	_ = h.auth.Logout(c, refreshToken)

	c.SetCookie(refreshCookie, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, token, int(security.RefreshTTL.Seconds()), "/", "", h.cookieSecure, true)
}
