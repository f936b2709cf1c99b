package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*redisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, time.Hour, 30*time.Second), mr
}

func TestRedisStore_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt acquires", func(t *testing.T) {
		s, mr := newTestStore(t)

		orderID, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.Empty(t, orderID)

		val, err := mr.Get("idem:checkout:c1:k1")
		require.NoError(t, err)
		assert.Equal(t, pendingMarker, val)
		assert.Equal(t, 30*time.Second, mr.TTL("idem:checkout:c1:k1"))
	})

	t.Run("concurrent attempt sees in-flight marker", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		require.True(t, acquired)

		orderID, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, orderID)
	})

	t.Run("completed attempt returns order id", func(t *testing.T) {
		s, mr := newTestStore(t)

		_, _, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		require.NoError(t, s.Complete(ctx, "c1", "k1", "order-1"))
		assert.Equal(t, time.Hour, mr.TTL("idem:checkout:c1:k1"))

		orderID, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Equal(t, "order-1", orderID)
	})

	t.Run("keys are scoped per customer", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		require.True(t, acquired)

		_, acquired, err = s.Acquire(ctx, "c2", "k1")
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("released key can be acquired again", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, _, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		require.NoError(t, s.Release(ctx, "c1", "k1"))

		_, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("expired lock can be acquired again", func(t *testing.T) {
		s, mr := newTestStore(t)

		_, _, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		mr.FastForward(31 * time.Second)

		_, acquired, err := s.Acquire(ctx, "c1", "k1")
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("redis unavailable", func(t *testing.T) {
		s, mr := newTestStore(t)
		mr.Close()

		_, acquired, err := s.Acquire(ctx, "c1", "k1")
		assert.Error(t, err)
		assert.False(t, acquired)
	})
}
