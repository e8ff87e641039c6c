package redis

import "errors"

var (
	ErrNoURL       = errors.New("redis: REDIS_URL is empty")
	ErrInvalidURL  = errors.New("redis: REDIS_URL must be a redis:// or rediss:// URL")
	ErrUnreachable = errors.New("redis: server unreachable")
	ErrPingFailed  = errors.New("redis: ping failed")
)
