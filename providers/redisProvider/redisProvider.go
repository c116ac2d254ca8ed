package redisprovider

import (
	"context"
	"time"

	"labtrack/providers"

	"github.com/redis/go-redis/v9"
)

type RedisDbProvider struct {
	client *redis.Client
}

func NewRedisProvider(addr string) providers.RedisProvider {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	return &RedisDbProvider{
		client: rdb,
	}
}

func (r *RedisDbProvider) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisDbProvider) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisDbProvider) ZAdd(ctx context.Context, key string, score float64, member string) error {
	return r.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

func (r *RedisDbProvider) ZRangeByScore(ctx context.Context, key, min, max string) ([]string, error) {
	return r.client.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: min, Max: max}).Result()
}

func (r *RedisDbProvider) ZRemRangeByScore(ctx context.Context, key, min, max string) error {
	return r.client.ZRemRangeByScore(ctx, key, min, max).Err()
}

func (r *RedisDbProvider) Publish(ctx context.Context, channel string, payload []byte) error {
	return r.client.Publish(ctx, channel, payload).Err()
}

func (r *RedisDbProvider) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisDbProvider) Close() error {
	return r.client.Close()
}
