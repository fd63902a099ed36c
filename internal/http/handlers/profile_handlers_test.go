package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/you/phoneauthsvc/domain"
	"github.com/you/phoneauthsvc/internal/http/middleware"
	"github.com/you/phoneauthsvc/internal/mocks"
)

func newProfileRouter(authSvc *mocks.MockAuthService, phone string) (*gin.Engine, *ProfileHandlers) {
	gin.SetMode(gin.TestMode)
	h := NewProfileHandlers(authSvc)
	r := gin.New()
	withPhone := func(c *gin.Context) { c.Set(middleware.PhoneContextKey, phone) }
	r.POST("/profile", withPhone, h.Update)
	r.GET("/profile", withPhone, h.Info)
	return r, h
}

func TestProfileHandlers_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           UpdateProfileRequest
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "update completes the profile",
			body: UpdateProfileRequest{FirstName: "Ada", LastName: "Lovelace"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.UpdateProfileFunc = func(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error) {
					return &domain.User{
						Phone:     phone,
						Profile:   true,
						FirstName: update.FirstName,
						LastName:  update.LastName,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"hasProfile":true`,
		},
		{
			name: "subject missing",
			body: UpdateProfileRequest{FirstName: "Ada"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.UpdateProfileFunc = func(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			r, _ := newProfileRouter(authSvc, "5551234")

			w := performJSON(r, http.MethodPost, "/profile", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %q missing %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestProfileHandlers_Info(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.GetProfileFunc = func(ctx context.Context, phone string) (*domain.User, error) {
		return &domain.User{Phone: phone, Profile: true, FirstName: "Ada", LastName: "Lovelace"}, nil
	}
	r, _ := newProfileRouter(authSvc, "5551234")

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Ada") {
		t.Errorf("expected profile fields in body, got %s", w.Body.String())
	}
}
