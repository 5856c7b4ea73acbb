package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogetaccount/internal/account/adapters/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return s, client
}

func TestKey(t *testing.T) {
	assert.Equal(t, "account:access_token:a1", cache.Key("a1"))
}

func TestStore_WithTTL(t *testing.T) {
	s, client := mockRedisServer(t)
	repo := cache.NewAccessTokenRepository(client, 15*time.Minute)

	require.NoError(t, repo.Store(context.Background(), "a1", "tok"))

	value, err := s.Get(cache.Key("a1"))
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
	assert.Equal(t, 15*time.Minute, s.TTL(cache.Key("a1")))

	s.FastForward(16 * time.Minute)
	assert.False(t, s.Exists(cache.Key("a1")))
}

func TestStore_OverwritesPreviousToken(t *testing.T) {
	s, client := mockRedisServer(t)
	repo := cache.NewAccessTokenRepository(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "a1", "first"))
	require.NoError(t, repo.Store(ctx, "a1", "second"))

	value, err := s.Get(cache.Key("a1"))
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestStore_WithoutTTL(t *testing.T) {
	s, client := mockRedisServer(t)
	repo := cache.NewAccessTokenRepository(client, -time.Second)

	require.NoError(t, repo.Store(context.Background(), "a1", "tok"))

	assert.Equal(t, time.Duration(0), s.TTL(cache.Key("a1")))
}

func TestStore_RedisUnavailable(t *testing.T) {
	s, client := mockRedisServer(t)
	repo := cache.NewAccessTokenRepository(client, time.Minute)
	s.Close()

	err := repo.Store(context.Background(), "a1", "tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store access token")
}
