package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/config"
	httpx "github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http/handlers"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http/middleware"
)

// Run builds the container and serves the API until the process exits.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	ah := handlers.NewAuthHandlers(c.AuthSvc, c.TokenSvc)
	authmw := middleware.NewAuthMW(c.TokenSvc, c.SessionCache)

	r := httpx.BuildRouter(ah, authmw)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
