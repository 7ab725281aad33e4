package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"

	// ctxUserID is the gin context key set by the auth middleware.
	ctxUserID = "user_id"
)

// setSessionCookies writes both tokens as HttpOnly cookies with max-ages
// matching the token lifetimes.
func (h *AuthHandlers) setSessionCookies(c *gin.Context, tokens *domain.SessionTokens) {
	c.SetCookie(accessCookie, tokens.AccessToken, int(h.tokenSvc.AccessTTL().Seconds()), "/", "", false, true)
	c.SetCookie(refreshCookie, tokens.RefreshToken, int(h.tokenSvc.RefreshTTL().Seconds()), "/", "", false, true)
}

// clearSessionCookies expires both token cookies.
func (h *AuthHandlers) clearSessionCookies(c *gin.Context) {
	c.SetCookie(accessCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
}
