package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/phoneauthsvc/internal/config"
	httpx "github.com/you/phoneauthsvc/internal/http"
	"github.com/you/phoneauthsvc/internal/http/handlers"
	"github.com/you/phoneauthsvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc, container.UserRepo, cfg.SessionTTL)
	profileH := handlers.NewProfileHandlers(container.AuthSvc)
	authMW := middleware.NewAuthMW(container.TokenSvc)

	r := httpx.BuildRouter(authH, profileH, authMW, cfg.CORSOrigin)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
