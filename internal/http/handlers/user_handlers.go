package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// UpdateProfileRequest represents a profile update; both fields optional.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateAvatarRequest carries the base64 image payload.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UpdateProfile handles name/email updates (requires authentication)
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), c.GetString(ctxUserID), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			fail(c, http.StatusConflict, "Email already exists")
		case errors.Is(err, domain.ErrUserNotFound):
			fail(c, http.StatusNotFound, "User not found")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// ChangePassword handles password changes (requires authentication)
func (h *AuthHandlers) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authSvc.ChangePassword(c.Request.Context(), c.GetString(ctxUserID), req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			fail(c, http.StatusBadRequest, "Please enter old and new password")
		case errors.Is(err, domain.ErrInvalidUser):
			fail(c, http.StatusBadRequest, "Invalid user")
		case errors.Is(err, domain.ErrInvalidOldPassword):
			fail(c, http.StatusBadRequest, "Invalid old password")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update password")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// UpdateAvatar handles profile picture updates (requires authentication)
func (h *AuthHandlers) UpdateAvatar(c *gin.Context) {
	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authSvc.UpdateAvatar(c.Request.Context(), c.GetString(ctxUserID), req.Avatar)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to update profile picture")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
