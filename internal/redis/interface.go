package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories depend on. Both
// *redis.Client and redismock clients satisfy it.
type Client interface {
	redis.UniversalClient
}
