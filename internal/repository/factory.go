package repository

import "fmt"

// NewStore constructs a SweetRepository by kind: "memory" or "redis".
// redisURL and keyPrefix are only consulted for the redis kind.
func NewStore(kind, redisURL, keyPrefix string) (SweetRepository, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryRepository(), nil
	case "redis":
		if redisURL == "" {
			return nil, fmt.Errorf("redis URL required for redis store")
		}
		return NewRedisRepository(redisURL, keyPrefix)
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
