package domain

import (
	"context"
	"time"
)

// UserRepository defines subject data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByPhone(ctx context.Context, phone string) (*User, error)
	UpdateProfile(ctx context.Context, phone string, update ProfileUpdate) (*User, error)
}

// ChallengeStore defines the TTL-bounded store holding pending OTP
// challenges. Put replaces any existing challenge for the phone number
// and restarts its expiry clock. Get returns ErrChallengeNotFound once
// the TTL has elapsed or after an explicit Delete; the two cases are
// not distinguishable. Delete is idempotent.
type ChallengeStore interface {
	Put(ctx context.Context, phone string, challenge *Challenge, ttl time.Duration) error
	Get(ctx context.Context, phone string) (*Challenge, error)
	Delete(ctx context.Context, phone string) error
}

// OTPService defines the OTP challenge/response state machine
type OTPService interface {
	RequestChallenge(ctx context.Context, phone string) (*Challenge, error)
	Verify(ctx context.Context, phone string, code int) error
}

// AuthService defines authentication business logic
type AuthService interface {
	RequestChallenge(ctx context.Context, phone string) error
	VerifyChallenge(ctx context.Context, phone string, code int) (*AuthResult, error)
	GetProfile(ctx context.Context, phone string) (*User, error)
	UpdateProfile(ctx context.Context, phone string, update ProfileUpdate) (*User, error)
}

// TokenService defines session credential operations
type TokenService interface {
	GenerateSessionToken(phone string) (string, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// TokenClaims represents the claims carried by a session credential
type TokenClaims struct {
	Phone     string `json:"phone"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
