package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// withMiniredis points the package client at an in-process Redis and
// restores the previous client afterwards.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := GetClient()
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	var missing cachedThing
	found, err := GetJSON(ctx, "nope", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "thing", cachedThing{Name: "flour", Count: 2}, time.Minute))

	var got cachedThing
	found, err = GetJSON(ctx, "thing", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "flour", got.Name)
	assert.Equal(t, 2, got.Count)
}

func TestCacheAside(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			calls++
			dest.Name = "fetched"
			dest.Count = calls
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, CacheAside(ctx, "aside", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache.
	var second cachedThing
	require.NoError(t, CacheAside(ctx, "aside", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, second.Count)
}

func TestCacheAsideExpiry(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var dest cachedThing
	fetch := func() error {
		calls++
		dest.Count = calls
		return nil
	}

	require.NoError(t, CacheAside(ctx, "ttl", &dest, time.Second, fetch))
	mr.FastForward(2 * time.Second)
	require.NoError(t, CacheAside(ctx, "ttl", &dest, time.Second, fetch))
	assert.Equal(t, 2, calls)
}

func TestInvalidateRecipe(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, RecipeKey(7), cachedThing{Name: "cached"}, time.Minute))
	InvalidateRecipe(ctx, 7)

	var got cachedThing
	found, err := GetJSON(ctx, RecipeKey(7), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientNoOps(t *testing.T) {
	prev := GetClient()
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })
	ctx := context.Background()

	found, err := GetJSON(ctx, "anything", &cachedThing{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "anything", cachedThing{}, time.Minute))
	InvalidateRecipe(ctx, 1)
	InvalidateTags(ctx)

	// Cache-aside degrades to a plain fetch.
	calls := 0
	var dest cachedThing
	require.NoError(t, CacheAside(ctx, "anything", &dest, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
}
