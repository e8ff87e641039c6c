package cache

import "errors"

var (
	// ErrNotFound reports a miss: the key was never set or its TTL ran out.
	ErrNotFound = errors.New("cache: miss")
	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("cache: store is closed")
	// ErrMarshal and ErrUnmarshal wrap codec failures of the Redis store.
	ErrMarshal   = errors.New("cache: encode value")
	ErrUnmarshal = errors.New("cache: decode value")
)
