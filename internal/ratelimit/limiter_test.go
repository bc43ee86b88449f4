package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLimiter(client, limit, time.Minute), mr
}

func TestLimiterAllowsUpToLimit(t *testing.T) {
	l, _ := newLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// other keys have their own window
	ok, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterWindowExpires(t *testing.T) {
	l, mr := newLimiter(t, 1)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "k")
	assert.False(t, ok)

	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"k"))
	mr.FastForward(time.Minute)

	ok, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterRearmsMissingWindow(t *testing.T) {
	l, mr := newLimiter(t, 2)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	// the key lost its expiry after the first hit
	require.NoError(t, l.redis.Persist(ctx, keyPrefix+"k").Err())
	assert.Zero(t, mr.TTL(keyPrefix+"k"))

	ok, err = l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"k"))

	ok, err = l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(time.Minute)

	ok, err = l.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiterRedisDown(t *testing.T) {
	l, mr := newLimiter(t, 1)
	mr.Close()

	_, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
}
