package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/you/phoneauthsvc/internal/http/handlers"
	"github.com/you/phoneauthsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProfileHandlers, authMW *middleware.AuthMW, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if corsOrigin != "" {
		// Cookie transport requires credentialed CORS.
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{corsOrigin},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/otp/send", ah.SendOTP)
	auth.POST("/otp/verify", ah.VerifyOTP)
	auth.POST("/logout", ah.Logout)

	v := r.Group("/").Use(authMW.WithSession())
	v.GET("/auth/session", ah.CheckSession)
	v.POST("/profile", ph.Update)
	v.GET("/profile", ph.Info)

	return r
}
