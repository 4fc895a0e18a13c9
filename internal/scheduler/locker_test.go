package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("second lock on the same key is refused", func(t *testing.T) {
		locker := NewMemoryLocker()

		unlock, ok, err := locker.TryLock(ctx, "e1:DOMAIN", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		_, ok, err = locker.TryLock(ctx, "e1:DOMAIN", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, _ = locker.TryLock(ctx, "e1:CERTIFICATE", time.Minute)
		assert.True(t, ok, "other keys are independent")

		unlock()
		_, ok, _ = locker.TryLock(ctx, "e1:DOMAIN", time.Minute)
		assert.True(t, ok)
	})

	t.Run("expired lock can be taken over", func(t *testing.T) {
		locker := NewMemoryLocker()
		now := time.Now()
		locker.now = func() time.Time { return now }

		staleUnlock, ok, _ := locker.TryLock(ctx, "k", time.Second)
		require.True(t, ok)

		now = now.Add(2 * time.Second)
		_, ok, _ = locker.TryLock(ctx, "k", time.Minute)
		require.True(t, ok)

		// the stale holder must not drop the new lock
		staleUnlock()
		_, ok, _ = locker.TryLock(ctx, "k", time.Minute)
		assert.False(t, ok)
	})
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	t.Run("lock is exclusive across lockers", func(t *testing.T) {
		first := NewRedisLocker(client)
		second := NewRedisLocker(client)

		unlock, ok, err := first.TryLock(ctx, "e2:INGRESS", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, mr.Exists("onboarding:job-lock:e2:INGRESS"))

		_, ok, err = second.TryLock(ctx, "e2:INGRESS", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		unlock()
		assert.False(t, mr.Exists("onboarding:job-lock:e2:INGRESS"))

		_, ok, err = second.TryLock(ctx, "e2:INGRESS", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("stale unlock keeps the new holder", func(t *testing.T) {
		locker := NewRedisLocker(client)

		staleUnlock, ok, err := locker.TryLock(ctx, "e3:DID", time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)
		_, ok, err = locker.TryLock(ctx, "e3:DID", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		staleUnlock()
		assert.True(t, mr.Exists("onboarding:job-lock:e3:DID"))
	})

	t.Run("unreachable redis surfaces an error", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
		t.Cleanup(func() { _ = broken.Close() })

		_, ok, err := NewRedisLocker(broken).TryLock(ctx, "k", time.Minute)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
