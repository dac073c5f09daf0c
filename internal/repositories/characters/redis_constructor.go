package characters

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed character repository under keyPrefix
func NewRedis(client redis.UniversalClient, keyPrefix string) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:    client,
		KeyPrefix: keyPrefix,
	})
}
