package infra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// ColaRedis is a Redis-list job queue. Producers LPUSH JSON payloads;
// workers BRPOP them.
type ColaRedis struct {
	rdb *redis.Client
}

func NewColaRedis(rdb *redis.Client) *ColaRedis { return &ColaRedis{rdb: rdb} }

func (c *ColaRedis) Encolar(ctx context.Context, cola string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cola %s: marshal: %w", cola, err)
	}
	return c.rdb.LPush(ctx, cola, body).Err()
}
