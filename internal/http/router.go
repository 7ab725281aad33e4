package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http/handlers"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http/middleware"
)

// BuildRouter wires the account routes under /api/v1.
func BuildRouter(ah *handlers.AuthHandlers, authmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	v1 := r.Group("/api/v1")
	v1.POST("/registration", ah.Register)
	v1.POST("/activate-user", ah.Activate)
	v1.POST("/login", ah.Login)
	v1.POST("/social-auth", ah.SocialAuth)
	v1.POST("/refresh", ah.Refresh)

	authed := v1.Group("/").Use(authmw.WithAuth())
	authed.GET("/logout", ah.Logout)
	authed.GET("/me", ah.Me)
	authed.PUT("/update-user-info", ah.UpdateProfile)
	authed.PUT("/update-user-password", ah.ChangePassword)
	authed.PUT("/update-profile-picture", ah.UpdateAvatar)

	return r
}
