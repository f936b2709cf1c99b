package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyFormat     = "idem:checkout:%s:%s"
	pendingMarker = "pending"
)

type redisStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

// NewRedisStore returns a checkout-attempt guard. lockTTL bounds how long an
// in-flight attempt blocks its key; ttl is how long a finished one is remembered.
func NewRedisStore(rdb *redis.Client, ttl, lockTTL time.Duration) *redisStore {
	return &redisStore{rdb: rdb, ttl: ttl, lockTTL: lockTTL}
}

func key(customerID, idemKey string) string {
	return fmt.Sprintf(keyFormat, customerID, idemKey)
}

// Acquire claims the key for a new attempt. When the key is already taken it
// returns the order id recorded by a finished attempt, or acquired=false with
// an empty id while another attempt is still running.
func (s *redisStore) Acquire(ctx context.Context, customerID, idemKey string) (string, bool, error) {
	k := key(customerID, idemKey)

	// Two rounds cover a marker that expires between SETNX and GET.
	for range 2 {
		ok, err := s.rdb.SetNX(ctx, k, pendingMarker, s.lockTTL).Result()
		if err != nil {
			return "", false, fmt.Errorf("failed to acquire idempotency key: %w", err)
		}
		if ok {
			return "", true, nil
		}

		val, err := s.rdb.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to read idempotency key: %w", err)
		}
		if val == pendingMarker {
			return "", false, nil
		}
		return val, false, nil
	}
	return "", false, nil
}

func (s *redisStore) Complete(ctx context.Context, customerID, idemKey, orderID string) error {
	if err := s.rdb.Set(ctx, key(customerID, idemKey), orderID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to complete idempotency key: %w", err)
	}
	return nil
}

func (s *redisStore) Release(ctx context.Context, customerID, idemKey string) error {
	if err := s.rdb.Del(ctx, key(customerID, idemKey)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
