package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter counts hits per key inside a fixed window.
type Counter interface {
	// Incr adds one to key and returns the new count. The first hit opens a
	// window of the given length; the count resets once it closes.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type window struct {
	resetAt time.Time
	hits    int64
}

// MemoryCounter is a process-local Counter.
type MemoryCounter struct {
	windows map[string]*window
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
}

// NewMemoryCounter creates a MemoryCounter that sweeps closed windows every
// cleanup interval (WithCleanupInterval; default 1 minute).
func NewMemoryCounter(opts ...MemoryOption) *MemoryCounter {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &MemoryCounter{
		windows: make(map[string]*window),
		done:    make(chan struct{}),
	}
	if o.cleanupInterval > 0 {
		go janitor(o.cleanupInterval, c.done, c.sweep)
	}
	return c
}

// Incr implements Counter.
func (c *MemoryCounter) Incr(_ context.Context, key string, d time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}

	now := time.Now()
	w, ok := c.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(d)}
		c.windows[key] = w
	}
	w.hits++

	return w.hits, nil
}

// Close stops the sweeper. Close is idempotent.
func (c *MemoryCounter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
	}
	return nil
}

func (c *MemoryCounter) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, w := range c.windows {
		if !now.Before(w.resetAt) {
			delete(c.windows, key)
		}
	}
}

// RedisCounter is a Counter shared through Redis.
type RedisCounter struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedisCounter creates a Redis-backed Counter. Only WithPrefix applies.
func NewRedisCounter(client redis.UniversalClient, opts ...RedisOption) *RedisCounter {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &RedisCounter{client: client, opts: o}
}

// Incr implements Counter.
func (c *RedisCounter) Incr(ctx context.Context, key string, d time.Duration) (int64, error) {
	k := c.opts.key(key)

	n, err := c.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.PExpire(ctx, k, d).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

var (
	_ Counter = (*MemoryCounter)(nil)
	_ Counter = (*RedisCounter)(nil)
)
