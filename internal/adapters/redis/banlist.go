package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"eventplanner/internal/domain"
)

const banKeyPrefix = "banned_user:"

func banKey(userID int64) string {
	return fmt.Sprintf("%s%d", banKeyPrefix, userID)
}

// kv is the subset of redis commands the ban list needs.
type kv interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type banList struct {
	store kv
}

// NewBanList returns a Redis-backed BanList. A nil client returns a BanList that reports nobody as banned.
// Key format: banned_user:{id}, value is the ban reason, no expiry.
func NewBanList(client *Client) domain.BanList {
	if client == nil {
		return noopBanList{}
	}
	return &banList{store: client}
}

func (b *banList) Ban(ctx context.Context, userID int64, reason string) error {
	if err := b.store.Set(ctx, banKey(userID), reason, 0).Err(); err != nil {
		return fmt.Errorf("redis set ban: %w", err)
	}
	return nil
}

func (b *banList) Unban(ctx context.Context, userID int64) error {
	if err := b.store.Del(ctx, banKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del ban: %w", err)
	}
	return nil
}

func (b *banList) IsBanned(ctx context.Context, userID int64) (bool, error) {
	n, err := b.store.Exists(ctx, banKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists ban: %w", err)
	}
	return n > 0, nil
}

type noopBanList struct{}

func (noopBanList) Ban(context.Context, int64, string) error      { return nil }
func (noopBanList) Unban(context.Context, int64) error            { return nil }
func (noopBanList) IsBanned(context.Context, int64) (bool, error) { return false, nil }
