package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/phoneauthsvc/domain"
)

// SessionCookieName is the cookie carrying the session credential.
const SessionCookieName = "jwtToken"

// PhoneContextKey is the gin context key holding the authenticated
// phone number.
const PhoneContextKey = "phone"

// AuthMiddleware creates the access guard. It validates the presented
// session credential only; whether a matching subject still exists is
// the downstream handler's concern.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateSessionToken(token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			}
			c.Abort()
			return
		}

		c.Set(PhoneContextKey, claims.Phone)
		c.Next()
	})
}
