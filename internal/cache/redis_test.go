package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pereval-api/internal/config"
	"github.com/magabrotheeeer/pereval-api/internal/models"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		DialTimeout:  time.Second,
		TimeoutRedis: time.Second,
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestSetAndGetPass(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	expected := models.Pass{
		ID:      42,
		Title:   "Пхия",
		AddTime: "2021-09-22 13:18:13",
		Status:  models.StatusNew,
		Coords:  models.Coords{Latitude: 45.3842, Longitude: 7.1525, Height: 1200},
		User:    models.User{Email: "qwerty@mail.ru"},
		Images:  []models.Image{{ID: 1, Title: "Седловина", Data: "00ff"}},
	}
	require.NoError(t, cache.Set(ctx, PassKey(42), expected, time.Minute))

	var actual models.Pass
	found, err := cache.Get(ctx, PassKey(42), &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected.Title, actual.Title)
	assert.Equal(t, expected.Coords, actual.Coords)
	assert.Equal(t, expected.Images, actual.Images)
	assert.Equal(t, expected.Status, actual.Status)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out models.Pass
	found, err := cache.Get(context.Background(), "no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	mr.FastForward(2 * time.Minute)

	var out string
	found, err := cache.Get(ctx, "key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, cache.Invalidate(ctx, "key"))
	require.NoError(t, cache.Invalidate(ctx, "missing"))

	var out string
	found, err := cache.Get(ctx, "key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache, mr := setupTestCache(t)

	require.NoError(t, mr.Set("bad", "not-json"))

	var out models.Pass
	found, err := cache.Get(context.Background(), "bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestPassKey(t *testing.T) {
	assert.Equal(t, "pereval:7", PassKey(7))
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:1",
		DialTimeout:  200 * time.Millisecond,
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}
