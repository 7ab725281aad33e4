package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// AuthMW validates access tokens and resolves the cached session.
type AuthMW struct {
	tokenSvc     domain.TokenService
	sessionCache domain.SessionCache
}

// NewAuthMW creates the authentication middleware
func NewAuthMW(tokenSvc domain.TokenService, sessionCache domain.SessionCache) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc, sessionCache: sessionCache}
}

// WithAuth reads the access token from the access_token cookie or the
// Bearer header, validates it, and requires a live session snapshot. The
// resolved user id and snapshot go into the gin context.
func (m *AuthMW) WithAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abort(c, "Please login to access this resource")
			return
		}

		userID, err := m.tokenSvc.VerifyAccessToken(token)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				abort(c, "Access token expired")
				return
			}
			abort(c, "Invalid access token")
			return
		}

		user, err := m.sessionCache.Get(c.Request.Context(), userID)
		if err != nil {
			abort(c, "Session invalid or expired")
			return
		}

		c.Set("user_id", userID)
		c.Set("user", user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
