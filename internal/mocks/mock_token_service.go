package mocks

import (
	"time"

	"github.com/you/phoneauthsvc/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateSessionTokenFunc func(phone string) (string, error)
	ValidateSessionTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateSessionToken mints a session token
func (m *MockTokenService) GenerateSessionToken(phone string) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(phone)
	}
	return "mock-token-" + phone, nil
}

// ValidateSessionToken validates a session token
func (m *MockTokenService) ValidateSessionToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateSessionTokenFunc != nil {
		return m.ValidateSessionTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)

// ClaimsFor is a helper for building valid-looking claims in tests
func ClaimsFor(phone string, ttl time.Duration) *domain.TokenClaims {
	now := time.Now()
	return &domain.TokenClaims{
		Phone:     phone,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}
}
