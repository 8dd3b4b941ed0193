package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/candinya/translate-layer/modules/translate"
	"github.com/candinya/translate-layer/types"
	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

type cache interface {
	// Get reports found=false without error on a miss.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Key(req *translate.Request) string
}

type redisCache struct {
	rdb *redis.Client

	prefix   string
	provider string
	expire   time.Duration
}

func newRedisCache(rdb *redis.Client, cfg *types.ConfigRedis, provider string) *redisCache {
	return &redisCache{
		rdb:      rdb,
		prefix:   cfg.Prefix,
		provider: provider,
		expire:   cfg.CacheExpire,
	}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	result, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return result, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value string) error {
	return c.rdb.Set(ctx, key, value, c.expire).Err()
}

func (c *redisCache) Key(req *translate.Request) string {
	return cacheKey(c.prefix, c.provider, req)
}

// cacheKey identifies a translation by provider, language pair and a hash of the text.
func cacheKey(prefix string, provider string, req *translate.Request) string {
	source := req.Source
	if source == "" {
		source = "auto"
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString("translate:")
	b.WriteString(provider)
	b.WriteByte(':')
	b.WriteString(source)
	b.WriteByte(':')
	b.WriteString(req.Target)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(xxhash.Sum64String(req.Text), 16))
	return b.String()
}
