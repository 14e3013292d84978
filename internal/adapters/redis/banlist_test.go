package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV keeps keys in a map and builds redis command results with the library's constructors.
type fakeKV struct {
	data map[string]interface{}
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]interface{})}
}

func (f *fakeKV) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = value
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeKV) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestBanList(t *testing.T) {
	ctx := context.Background()
	store := newFakeKV()
	b := &banList{store: store}

	banned, err := b.IsBanned(ctx, 5)
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, b.Ban(ctx, 5, "spam"))
	assert.Equal(t, "spam", store.data["banned_user:5"])

	banned, err = b.IsBanned(ctx, 5)
	require.NoError(t, err)
	assert.True(t, banned)

	require.NoError(t, b.Unban(ctx, 5))
	banned, err = b.IsBanned(ctx, 5)
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestBanList_Errors(t *testing.T) {
	ctx := context.Background()
	store := newFakeKV()
	store.err = errors.New("connection refused")
	b := &banList{store: store}

	assert.Error(t, b.Ban(ctx, 1, "x"))
	assert.Error(t, b.Unban(ctx, 1))
	_, err := b.IsBanned(ctx, 1)
	assert.Error(t, err)
}

func TestNewBanList_NilClient(t *testing.T) {
	b := NewBanList(nil)
	require.NoError(t, b.Ban(context.Background(), 1, "x"))
	banned, err := b.IsBanned(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, banned)
}
