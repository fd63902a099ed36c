package domain

import "errors"

// OTP errors
var (
	// ErrChallengeNotFound covers both an expired challenge and one that
	// was never requested. The store does not distinguish the two.
	ErrChallengeNotFound = errors.New("otp challenge expired or missing")
	ErrCodeInvalid       = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Subject errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserPersistFailed = errors.New("failed to persist user")
)

// Authorization errors
var (
	ErrUnauthenticated = errors.New("no credential presented")
)
