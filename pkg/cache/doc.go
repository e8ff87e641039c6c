// Package cache provides small TTL stores shared by the site: a generic value
// cache and a windowed counter, each with an in-memory and a Redis backend.
//
// # Value cache
//
// [Cache] is generic over the stored value. [Memory] keeps entries in a map
// guarded by a mutex and expires them lazily on read and periodically from a
// janitor goroutine. [Redis] stores JSON-encoded values under an optional key
// prefix.
//
//	pages := cache.NewMemory[[]byte](cache.WithDefaultTTL(time.Hour))
//	defer pages.Close()
//
//	body, err := cache.GetOrSet(ctx, pages, "sitemap", func(ctx context.Context) ([]byte, time.Duration, error) {
//	    b, err := render(ctx)
//	    return b, 0, err
//	})
//
// [GetOrSet] collapses concurrent misses for the same key into a single call.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
//
// # Counters
//
// [Counter] increments a key inside a fixed window and reports the new value.
// The window starts with the first increment and the key disappears when it
// ends. It backs the contact form rate limiter:
//
//	hits := cache.NewMemoryCounter()
//	n, err := hits.Incr(ctx, "ip:203.0.113.7", 10*time.Minute)
//
// [RedisCounter] uses INCR and sets PEXPIRE on the first hit so several site
// instances can share a limit.
package cache
