package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/you/phoneauthsvc/domain"
)

// codeRange spans the 6-digit codes [100000, 999999]. The floor keeps
// the rendered code at a constant width with no leading zero.
const (
	codeMin   = 100000
	codeRange = 900000
)

// OTPServiceImpl implements domain.OTPService. It owns the
// challenge/response state machine: one live challenge per phone
// number, consumed exactly once on a successful verification.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	store           domain.ChallengeStore
	config          OTPServiceConfig
}

type OTPServiceConfig struct {
	TTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(notificationSvc domain.NotificationService, store domain.ChallengeStore, config OTPServiceConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		store:           store,
		config:          config,
	}
}

// RequestChallenge implements domain.OTPService. Any existing challenge
// for the phone number is overwritten and its expiry clock restarted.
func (s *OTPServiceImpl) RequestChallenge(ctx context.Context, phone string) (*domain.Challenge, error) {
	code, err := s.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	challenge := &domain.Challenge{
		Phone:     phone,
		Code:      code,
		CreatedAt: time.Now(),
	}

	if err := s.store.Put(ctx, phone, challenge, s.config.TTL); err != nil {
		return nil, fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	message := fmt.Sprintf("Your OTP is %d. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendSMS(phone, message); err != nil {
		// Roll back the stored challenge so a code the user never
		// received cannot be verified later.
		_ = s.store.Delete(ctx, phone)
		return nil, fmt.Errorf("failed to send OTP SMS: %w", err)
	}

	return challenge, nil
}

// Verify implements domain.OTPService. Only a successful match consumes
// the challenge; a wrong code leaves it intact so the user may retry
// within the remaining TTL window.
func (s *OTPServiceImpl) Verify(ctx context.Context, phone string, code int) error {
	challenge, err := s.store.Get(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			return domain.ErrChallengeNotFound
		}
		return fmt.Errorf("failed to read OTP challenge: %w", err)
	}

	if challenge.Code != code {
		return domain.ErrCodeInvalid
	}

	if err := s.store.Delete(ctx, phone); err != nil {
		return fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	return nil
}

// generateCode draws a uniform 6-digit code from crypto/rand.
func (s *OTPServiceImpl) generateCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return 0, err
	}
	return codeMin + int(n.Int64()), nil
}
