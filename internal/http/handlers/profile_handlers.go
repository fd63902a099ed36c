package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/phoneauthsvc/domain"
	"github.com/you/phoneauthsvc/internal/http/middleware"
)

// ProfileHandlers handles profile HTTP requests (all guarded)
type ProfileHandlers struct {
	authSvc domain.AuthService
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(authSvc domain.AuthService) *ProfileHandlers {
	return &ProfileHandlers{authSvc: authSvc}
}

// UpdateProfileRequest represents a profile update request
type UpdateProfileRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage"`
}

// Update handles profile updates for the authenticated phone number
func (h *ProfileHandlers) Update(c *gin.Context) {
	phone := c.GetString(middleware.PhoneContextKey)
	if phone == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Phone not found in context"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), phone, domain.ProfileUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":      "Profile updated successfully",
			"firstName":    user.FirstName,
			"lastName":     user.LastName,
			"profileImage": user.ProfileImage,
			"hasProfile":   user.Profile,
		},
	})
}

// Info returns the display fields for the authenticated phone number
func (h *ProfileHandlers) Info(c *gin.Context) {
	phone := c.GetString(middleware.PhoneContextKey)
	if phone == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Phone not found in context"})
		return
	}

	user, err := h.authSvc.GetProfile(c.Request.Context(), phone)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"firstName":    user.FirstName,
			"lastName":     user.LastName,
			"profileImage": user.ProfileImage,
		},
	})
}
