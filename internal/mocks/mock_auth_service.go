package mocks

import (
	"context"

	"github.com/you/phoneauthsvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RequestChallengeFunc func(ctx context.Context, phone string) error
	VerifyChallengeFunc  func(ctx context.Context, phone string, code int) (*domain.AuthResult, error)
	GetProfileFunc       func(ctx context.Context, phone string) (*domain.User, error)
	UpdateProfileFunc    func(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// RequestChallenge requests an OTP challenge
func (m *MockAuthService) RequestChallenge(ctx context.Context, phone string) error {
	if m.RequestChallengeFunc != nil {
		return m.RequestChallengeFunc(ctx, phone)
	}
	return nil
}

// VerifyChallenge verifies an OTP challenge and issues a session
func (m *MockAuthService) VerifyChallenge(ctx context.Context, phone string, code int) (*domain.AuthResult, error) {
	if m.VerifyChallengeFunc != nil {
		return m.VerifyChallengeFunc(ctx, phone, code)
	}
	return nil, domain.ErrChallengeNotFound
}

// GetProfile returns the subject record
func (m *MockAuthService) GetProfile(ctx context.Context, phone string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, phone)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a profile update
func (m *MockAuthService) UpdateProfile(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, phone, update)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
