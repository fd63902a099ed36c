package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/you/phoneauthsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo   domain.UserRepository
	otpSvc     domain.OTPService
	tokenSvc   domain.TokenService
	sessionTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo domain.UserRepository, otpSvc domain.OTPService, tokenSvc domain.TokenService, sessionTTL time.Duration) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		otpSvc:     otpSvc,
		tokenSvc:   tokenSvc,
		sessionTTL: sessionTTL,
	}
}

// RequestChallenge implements domain.AuthService
func (s *AuthServiceImpl) RequestChallenge(ctx context.Context, phone string) error {
	if _, err := s.otpSvc.RequestChallenge(ctx, phone); err != nil {
		return err
	}
	return nil
}

// VerifyChallenge implements domain.AuthService. On a correct code it
// bootstraps a stub subject for first-time users, then mints the
// session credential. A stub that fails to persist aborts the whole
// attempt: no session is issued for a user record that does not exist.
func (s *AuthServiceImpl) VerifyChallenge(ctx context.Context, phone string, code int) (*domain.AuthResult, error) {
	if err := s.otpSvc.Verify(ctx, phone, code); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &domain.User{Phone: phone, Profile: false}
		if err := s.userRepo.Create(ctx, user); err != nil {
			log.Printf("USER_PERSIST_FAILED: phone=%s error=%v", phone, err)
			return nil, domain.ErrUserPersistFailed
		}
	}

	token, err := s.tokenSvc.GenerateSessionToken(user.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		User:       user,
		Token:      token,
		HasProfile: user.Profile,
		ExpiresIn:  int64(s.sessionTTL.Seconds()),
	}, nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, phone string) (*domain.User, error) {
	return s.userRepo.FindByPhone(ctx, phone)
}

// UpdateProfile implements domain.AuthService. Applying an update marks
// the profile as completed.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error) {
	return s.userRepo.UpdateProfile(ctx, phone, update)
}
