package domain

import "time"

// User represents the durable subject record keyed by phone number
type User struct {
	ID           uint
	Phone        string
	Profile      bool
	FirstName    string
	LastName     string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Challenge represents a pending OTP challenge for a phone number.
// It lives only inside the challenge store and is consumed on
// successful verification.
type Challenge struct {
	Phone     string
	Code      int
	CreatedAt time.Time
}

// AuthResult represents the outcome of a successful OTP verification
type AuthResult struct {
	User       *User
	Token      string
	HasProfile bool
	ExpiresIn  int64
}

// ProfileUpdate carries the fields a user may set on their profile.
// Applying an update marks the profile as completed.
type ProfileUpdate struct {
	FirstName    string
	LastName     string
	ProfileImage string
}
