package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// AuthHandlers handles account and session HTTP requests
type AuthHandlers struct {
	authSvc  domain.AuthService
	tokenSvc domain.TokenService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, tokenSvc domain.TokenService) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		tokenSvc: tokenSvc,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ActivateRequest represents an account activation request
type ActivateRequest struct {
	ActivationToken string `json:"activation_token" binding:"required"`
	ActivationCode  string `json:"activation_code" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SocialAuthRequest represents a social-provider login request
type SocialAuthRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

// RefreshRequest represents a token refresh request; the cookie wins when
// both are present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register handles user registration. The activation code travels by mail;
// only the signed token is echoed back.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	activation, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			fail(c, http.StatusConflict, "Email already exists")
		case errors.Is(err, domain.ErrActivationThrottled):
			fail(c, http.StatusTooManyRequests, "Activation mail recently sent, please wait")
		case errors.Is(err, domain.ErrNotificationFailure):
			fail(c, http.StatusBadGateway, "Could not send activation mail")
		default:
			fail(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"message":         "Please check your email: " + req.Email + " to activate your account!",
		"activationToken": activation.Token,
	})
}

// Activate handles account activation
func (h *AuthHandlers) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.authSvc.Activate(c.Request.Context(), req.ActivationToken, req.ActivationCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeMismatch):
			fail(c, http.StatusBadRequest, "Invalid activation code")
		case errors.Is(err, domain.ErrTokenExpired):
			fail(c, http.StatusBadRequest, "Activation token has expired")
		case errors.Is(err, domain.ErrTokenInvalid):
			fail(c, http.StatusBadRequest, "Invalid activation token")
		case errors.Is(err, domain.ErrTooManyAttempts):
			fail(c, http.StatusTooManyRequests, "Too many activation attempts")
		case errors.Is(err, domain.ErrDuplicateEmail):
			fail(c, http.StatusConflict, "Email already exists")
		default:
			fail(c, http.StatusInternalServerError, "Activation failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User activated successfully.",
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			fail(c, http.StatusBadRequest, "Please enter email and password")
		case errors.Is(err, domain.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, "Invalid email or password")
		default:
			fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.emitSession(c, http.StatusOK, result)
}

// SocialAuth handles social-provider login, creating the account on first
// contact.
func (h *AuthHandlers) SocialAuth(c *gin.Context) {
	var req SocialAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.SocialLogin(c.Request.Context(), req.Email, req.Name, req.Avatar)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Social login failed")
		return
	}

	h.emitSession(c, http.StatusOK, result)
}

// Refresh handles token rotation. The refresh token comes from the cookie
// set at login, with a body fallback for non-browser clients.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		fail(c, http.StatusBadRequest, "Refresh token required")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRefreshInvalid):
			fail(c, http.StatusUnauthorized, "Could not refresh token")
		case errors.Is(err, domain.ErrSessionNotFound):
			fail(c, http.StatusUnauthorized, "Session expired, please login again")
		default:
			fail(c, http.StatusInternalServerError, "Token refresh failed")
		}
		return
	}

	h.setSessionCookies(c, &result.Tokens)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"accessToken": result.Tokens.AccessToken,
	})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	h.clearSessionCookies(c)
	if err := h.authSvc.Logout(c.Request.Context(), userID); err != nil {
		fail(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successfully",
	})
}

// Me handles reading the current user (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	user, err := h.authSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			fail(c, http.StatusNotFound, "Session not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// emitSession writes the token cookies and the login/social response body.
func (h *AuthHandlers) emitSession(c *gin.Context, status int, result *domain.AuthResult) {
	h.setSessionCookies(c, &result.Tokens)
	c.JSON(status, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.Tokens.AccessToken,
	})
}

// fail emits the uniform error shape.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
