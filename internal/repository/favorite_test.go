package repository

import (
	"context"
	"testing"

	"tastebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Toggle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db)
	reader := createTestUser(t, db)
	recipe := createTestRecipe(t, db, author, "Omelette")

	require.NoError(t, repo.Add(ctx, reader.ID, recipe.ID))

	exists, err := repo.Exists(ctx, reader.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("Second add conflicts", func(t *testing.T) {
		err := repo.Add(ctx, reader.ID, recipe.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", appErr.Code)
		assert.Equal(t, "Recipe is already in favorites", appErr.Message)
	})

	t.Run("Remove deletes the row", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, reader.ID, recipe.ID))

		exists, err := repo.Exists(ctx, reader.ID, recipe.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Second remove is not found", func(t *testing.T) {
		err := repo.Remove(ctx, reader.ID, recipe.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestFavoriteRepository_IndependentPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db)
	first := createTestUser(t, db)
	second := createTestUser(t, db)
	recipe := createTestRecipe(t, db, author, "Curry")

	require.NoError(t, repo.Add(ctx, first.ID, recipe.ID))
	require.NoError(t, repo.Add(ctx, second.ID, recipe.ID))
	require.NoError(t, repo.Remove(ctx, first.ID, recipe.ID))

	exists, err := repo.Exists(ctx, second.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
