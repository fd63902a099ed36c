package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/phoneauthsvc/domain"
	"github.com/you/phoneauthsvc/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	userRepo   domain.UserRepository
	sessionTTL time.Duration
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, userRepo domain.UserRepository, sessionTTL time.Duration) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		userRepo:   userRepo,
		sessionTTL: sessionTTL,
	}
}

// SendOTPRequest represents an OTP challenge request
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  int    `json:"code" binding:"required"`
}

// SendOTP handles OTP generation and delivery
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestChallenge(c.Request.Context(), req.Phone); err != nil {
		log.Printf("OTP_SEND_FAILED: phone=%s error=%v", req.Phone, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"phone": req.Phone,
		},
	})
}

// VerifyOTP handles OTP verification and session issuance. On success
// the session credential is transported as a strict same-site cookie.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyChallenge(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		switch err {
		case domain.ErrChallengeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "OTP expired or missing"})
		case domain.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP code"})
		case domain.ErrUserPersistFailed:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		}
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, result.Token, int(h.sessionTTL.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"hasProfile": result.HasProfile,
		},
	})
}

// CheckSession returns the authenticated identity and profile state
// (requires authentication)
func (h *AuthHandlers) CheckSession(c *gin.Context) {
	phone := c.GetString(middleware.PhoneContextKey)
	if phone == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Phone not found in context"})
		return
	}

	user, err := h.userRepo.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"phone":      user.Phone,
			"hasProfile": user.Profile,
		},
	})
}

// Logout clears the session cookie. Best effort: the credential itself
// stays valid until expiry, so this always succeeds.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}
