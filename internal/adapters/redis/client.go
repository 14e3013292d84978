package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client wraps redis.Client.
type Client struct {
	*redis.Client
}

// NewClient connects to addr and pings it. An empty addr yields a nil client, which
// the ban list treats as "Redis disabled".
func NewClient(ctx context.Context, addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, nil
	}
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &Client{Client: c}, nil
}
