package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/phoneauthsvc/domain"
)

// ChallengeStoreImpl implements domain.ChallengeStore using Redis.
// Redis TTL handles expiry, so an expired challenge and a missing one
// both surface as redis.Nil.
type ChallengeStoreImpl struct {
	client *redis.Client
	prefix string
}

// challengeRecord is the stored form of a pending challenge.
type challengeRecord struct {
	OTP int `json:"otp"`
}

// NewChallengeStore creates a new Redis-based challenge store
func NewChallengeStore(client *redis.Client) domain.ChallengeStore {
	return &ChallengeStoreImpl{
		client: client,
		prefix: "otp:",
	}
}

// Put implements domain.ChallengeStore. SET overwrites any prior entry
// for the key, so at most one challenge is live per phone number.
func (r *ChallengeStoreImpl) Put(ctx context.Context, phone string, challenge *domain.Challenge, ttl time.Duration) error {
	data, err := json.Marshal(challengeRecord{OTP: challenge.Code})
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	return r.client.Set(ctx, r.prefix+phone, data, ttl).Err()
}

// Get implements domain.ChallengeStore
func (r *ChallengeStoreImpl) Get(ctx context.Context, phone string) (*domain.Challenge, error) {
	data, err := r.client.Get(ctx, r.prefix+phone).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge from Redis: %w", err)
	}

	var record challengeRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &domain.Challenge{
		Phone: phone,
		Code:  record.OTP,
	}, nil
}

// Delete implements domain.ChallengeStore
func (r *ChallengeStoreImpl) Delete(ctx context.Context, phone string) error {
	return r.client.Del(ctx, r.prefix+phone).Err()
}
