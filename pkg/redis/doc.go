// Package redis opens the optional Redis connection used by the contact form
// rate limiter and exposes the readiness check and shutdown hook for it.
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithRetry(3, time.Second))
//	if err != nil {
//	    return err
//	}
//	counter := cache.NewRedisCounter(client, cache.WithPrefix("contact"))
//
// Only redis:// and rediss:// URLs are accepted. Open pings the server and
// retries with a linearly growing pause before giving up.
package redis
