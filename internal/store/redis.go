package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glintler/auth-gateway/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// Records are retained past their expiry so that a verification attempt
// after the deadline reports "expired" rather than "not found"; the TTL only
// garbage-collects records nobody will ask about again.
const expiredRetention = time.Hour

// RedisStore is the external backing for multi-instance deployments. The
// record, including its expiry, is stored as JSON; expiry enforcement stays
// in the verifier so both backings behave identically.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

func (s *RedisStore) Put(ctx context.Context, identity string, rec domain.OtpRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode otp record: %w", err)
	}
	ttl := time.Until(rec.ExpiresAt) + expiredRetention
	return s.client.Set(ctx, keyPrefix+identity, b, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, identity string) (*domain.OtpRecord, error) {
	b, err := s.client.Get(ctx, keyPrefix+identity).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var rec domain.OtpRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode otp record: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Delete(ctx context.Context, identity string) (bool, error) {
	n, err := s.client.Del(ctx, keyPrefix+identity).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return n > 0, nil
}
