package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/you/phoneauthsvc/domain"
)

// AuthMW wraps the token service for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithSession returns the session cookie middleware function
func (mw *AuthMW) WithSession() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc)
}
