package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/you/phoneauthsvc/domain"
	"github.com/you/phoneauthsvc/internal/mocks"
)

func createAuthServiceForTest(t *testing.T) (domain.AuthService, *mocks.MockUserRepository, *mocks.MockChallengeStore, *mocks.MockTokenService) {
	t.Helper()

	userRepo := mocks.NewMockUserRepository()
	store := mocks.NewMockChallengeStore()
	tokenSvc := mocks.NewMockTokenService()
	notificationSvc := mocks.NewMockNotificationService()

	otpSvc := NewOTPService(notificationSvc, store, OTPServiceConfig{TTL: 5 * time.Minute})
	authSvc := NewAuthService(userRepo, otpSvc, tokenSvc, 24*time.Hour)

	return authSvc, userRepo, store, tokenSvc
}

// requestCode issues a challenge and reads the generated code back out
// of the store.
func requestCode(t *testing.T, authSvc domain.AuthService, store *mocks.MockChallengeStore, phone string) int {
	t.Helper()

	if err := authSvc.RequestChallenge(context.Background(), phone); err != nil {
		t.Fatalf("failed to request challenge: %v", err)
	}
	challenge, err := store.Get(context.Background(), phone)
	if err != nil {
		t.Fatalf("failed to read stored challenge: %v", err)
	}
	return challenge.Code
}

func TestAuthServiceImpl_VerifyChallenge(t *testing.T) {
	ctx := context.Background()

	t.Run("first-time user gets stub subject and hasProfile false", func(t *testing.T) {
		authSvc, userRepo, store, _ := createAuthServiceForTest(t)

		var created *domain.User
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			created = user
			user.ID = 42
			return nil
		}

		code := requestCode(t, authSvc, store, "5551234")

		result, err := authSvc.VerifyChallenge(ctx, "5551234", code)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil {
			t.Fatal("expected a stub subject to be created")
		}
		if created.Phone != "5551234" || created.Profile {
			t.Errorf("stub subject = %+v, want phone=5551234 profile=false", created)
		}
		if result.HasProfile {
			t.Error("expected hasProfile false for a first-time user")
		}
		if result.Token == "" {
			t.Error("expected a session token")
		}
		if result.ExpiresIn != int64((24 * time.Hour).Seconds()) {
			t.Errorf("ExpiresIn = %d, want 86400", result.ExpiresIn)
		}
	})

	t.Run("returning user with completed profile", func(t *testing.T) {
		authSvc, userRepo, store, _ := createAuthServiceForTest(t)

		userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
			return &domain.User{ID: 7, Phone: phone, Profile: true, FirstName: "Ada"}, nil
		}
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			t.Error("Create must not be called for an existing user")
			return nil
		}

		code := requestCode(t, authSvc, store, "5551234")

		result, err := authSvc.VerifyChallenge(ctx, "5551234", code)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.HasProfile {
			t.Error("expected hasProfile true")
		}
	})

	t.Run("stub persistence failure aborts the attempt", func(t *testing.T) {
		authSvc, userRepo, store, tokenSvc := createAuthServiceForTest(t)

		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			return errors.New("postgres unavailable")
		}
		tokenSvc.GenerateSessionTokenFunc = func(phone string) (string, error) {
			t.Error("no session may be minted when the stub failed to save")
			return "", nil
		}

		code := requestCode(t, authSvc, store, "5551234")

		_, err := authSvc.VerifyChallenge(ctx, "5551234", code)
		if !errors.Is(err, domain.ErrUserPersistFailed) {
			t.Errorf("expected ErrUserPersistFailed, got %v", err)
		}
	})

	t.Run("verification failure never reaches the user store", func(t *testing.T) {
		authSvc, userRepo, store, _ := createAuthServiceForTest(t)

		userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
			t.Error("user store must not be consulted for a failed verification")
			return nil, domain.ErrUserNotFound
		}

		code := requestCode(t, authSvc, store, "5551234")
		wrong := code + 1
		if wrong > 999999 {
			wrong = 100000
		}

		_, err := authSvc.VerifyChallenge(ctx, "5551234", wrong)
		if !errors.Is(err, domain.ErrCodeInvalid) {
			t.Errorf("expected ErrCodeInvalid, got %v", err)
		}
	})

	t.Run("challenge is consumed exactly once", func(t *testing.T) {
		authSvc, _, store, _ := createAuthServiceForTest(t)

		code := requestCode(t, authSvc, store, "5551234")

		if _, err := authSvc.VerifyChallenge(ctx, "5551234", code); err != nil {
			t.Fatalf("first verification failed: %v", err)
		}

		_, err := authSvc.VerifyChallenge(ctx, "5551234", code)
		if !errors.Is(err, domain.ErrChallengeNotFound) {
			t.Errorf("expected ErrChallengeNotFound on replay, got %v", err)
		}
	})

	t.Run("second cycle after profile completion reports hasProfile true", func(t *testing.T) {
		authSvc, userRepo, store, _ := createAuthServiceForTest(t)

		var mu sync.Mutex
		users := map[string]*domain.User{}
		userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
			mu.Lock()
			defer mu.Unlock()
			if u, ok := users[phone]; ok {
				copy := *u
				return &copy, nil
			}
			return nil, domain.ErrUserNotFound
		}
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			mu.Lock()
			defer mu.Unlock()
			user.ID = uint(len(users) + 1)
			copy := *user
			users[user.Phone] = &copy
			return nil
		}
		userRepo.UpdateProfileFunc = func(ctx context.Context, phone string, update domain.ProfileUpdate) (*domain.User, error) {
			mu.Lock()
			defer mu.Unlock()
			u, ok := users[phone]
			if !ok {
				return nil, domain.ErrUserNotFound
			}
			u.FirstName = update.FirstName
			u.LastName = update.LastName
			u.ProfileImage = update.ProfileImage
			u.Profile = true
			copy := *u
			return &copy, nil
		}

		code := requestCode(t, authSvc, store, "5551234")
		first, err := authSvc.VerifyChallenge(ctx, "5551234", code)
		if err != nil {
			t.Fatalf("first cycle failed: %v", err)
		}
		if first.HasProfile {
			t.Error("first cycle should report hasProfile false")
		}

		if _, err := authSvc.UpdateProfile(ctx, "5551234", domain.ProfileUpdate{FirstName: "Ada", LastName: "Lovelace"}); err != nil {
			t.Fatalf("profile update failed: %v", err)
		}

		code = requestCode(t, authSvc, store, "5551234")
		second, err := authSvc.VerifyChallenge(ctx, "5551234", code)
		if err != nil {
			t.Fatalf("second cycle failed: %v", err)
		}
		if !second.HasProfile {
			t.Error("second cycle should report hasProfile true")
		}
	})
}
