package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistroboss/internal/cache"
)

func newTestTokenStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := cache.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStore(client), mr
}

func TestTokenStore_Blacklist(t *testing.T) {
	store, mr := newTestTokenStore(t)
	ctx := context.Background()

	revoked, err := store.IsAccessTokenBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.BlacklistAccessToken(ctx, "jti-1", 30*time.Minute))

	revoked, err = store.IsAccessTokenBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, 30*time.Minute, mr.TTL(revokedTokenKeyPrefix+"jti-1"))

	mr.FastForward(31 * time.Minute)
	revoked, err = store.IsAccessTokenBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_BlacklistExpiredTokenIsNoop(t *testing.T) {
	store, mr := newTestTokenStore(t)

	require.NoError(t, store.BlacklistAccessToken(context.Background(), "jti-2", -time.Second))

	assert.False(t, mr.Exists(revokedTokenKeyPrefix+"jti-2"))
}
