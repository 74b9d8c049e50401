package champions

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed champion cache with the default version TTL
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:     client,
		VersionTTL: DefaultVersionTTL,
	})
}
