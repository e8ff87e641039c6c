package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goduckworks/duckworks/pkg/cache"
)

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		_, err := c.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 42, time.Minute))

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("expires entries after ttl", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string](cache.WithCleanupInterval(0))
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Millisecond))

		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string](cache.WithDefaultTTL(time.Millisecond), cache.WithCleanupInterval(0))
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", -1))

		time.Sleep(5 * time.Millisecond)

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "value", val)
	})

	t.Run("janitor removes expired entries", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string](cache.WithCleanupInterval(5 * time.Millisecond))
		defer c.Close()

		require.NoError(t, c.Set(context.Background(), "key", "value", time.Millisecond))
		require.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("delete removes key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
		require.NoError(t, c.Delete(ctx, "key"))

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("set after close fails", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())

		err := c.Set(context.Background(), "key", "value", time.Minute)
		require.ErrorIs(t, err, cache.ErrClosed)
	})
}

func TestGetOrSet(t *testing.T) {
	t.Parallel()

	t.Run("returns cached value on hit", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "hit", "cached", time.Minute))

		val, err := cache.GetOrSet(ctx, c, "hit", func(_ context.Context) (string, time.Duration, error) {
			t.Fatal("fn should not be called on cache hit")
			return "", 0, nil
		})
		require.NoError(t, err)
		require.Equal(t, "cached", val)
	})

	t.Run("computes and caches on miss", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		ctx := context.Background()
		val, err := cache.GetOrSet(ctx, c, "miss", func(_ context.Context) (string, time.Duration, error) {
			return "computed", time.Minute, nil
		})
		require.NoError(t, err)
		require.Equal(t, "computed", val)

		cached, err := c.Get(ctx, "miss")
		require.NoError(t, err)
		require.Equal(t, "computed", cached)
	})

	t.Run("does not cache errors", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		defer c.Close()

		ctx := context.Background()
		errCompute := errors.New("compute failed")

		_, err := cache.GetOrSet(ctx, c, "fail", func(_ context.Context) (string, time.Duration, error) {
			return "", 0, errCompute
		})
		require.ErrorIs(t, err, errCompute)

		_, err = c.Get(ctx, "fail")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		defer c.Close()

		ctx := context.Background()
		var calls atomic.Int64
		var wg sync.WaitGroup

		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				val, err := cache.GetOrSet(ctx, c, "dedup", func(_ context.Context) (int, time.Duration, error) {
					calls.Add(1)
					time.Sleep(20 * time.Millisecond)
					return 42, time.Minute, nil
				})
				if err == nil && val != 42 {
					t.Errorf("unexpected value %d", val)
				}
			}()
		}
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int64(2))
	})
}

func TestMemoryCounter(t *testing.T) {
	t.Parallel()

	t.Run("counts within window", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCounter()
		defer c.Close()

		ctx := context.Background()
		for want := int64(1); want <= 3; want++ {
			n, err := c.Incr(ctx, "ip", time.Minute)
			require.NoError(t, err)
			require.Equal(t, want, n)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCounter()
		defer c.Close()

		ctx := context.Background()
		_, err := c.Incr(ctx, "a", time.Minute)
		require.NoError(t, err)

		n, err := c.Incr(ctx, "b", time.Minute)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})

	t.Run("resets after window", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCounter(cache.WithCleanupInterval(0))
		defer c.Close()

		ctx := context.Background()
		_, err := c.Incr(ctx, "ip", 5*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		n, err := c.Incr(ctx, "ip", 5*time.Millisecond)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})

	t.Run("fails after close", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemoryCounter()
		require.NoError(t, c.Close())

		_, err := c.Incr(context.Background(), "ip", time.Minute)
		require.ErrorIs(t, err, cache.ErrClosed)
	})
}
