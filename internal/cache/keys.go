package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs for the cached projections. Detail pages live longer than list
// pages because lists shift with every publish.
const (
	RecipeTTL     = 5 * time.Minute
	RecipeListTTL = 30 * time.Second
	TagListTTL    = 10 * time.Minute
)

// RecipeKey returns the cache key for a single recipe projection as seen
// by an anonymous reader. Per-user flags are never cached.
func RecipeKey(id uint) string {
	return fmt.Sprintf("recipe:%d", id)
}

// TagListKey is the cache key for the full tag listing.
const TagListKey = "tags:all"

// InvalidateRecipe drops the cached projection for a recipe.
func InvalidateRecipe(ctx context.Context, id uint) {
	if client == nil {
		return
	}
	client.Del(ctx, RecipeKey(id))
}

// InvalidateTags drops the cached tag listing.
func InvalidateTags(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, TagListKey)
}
