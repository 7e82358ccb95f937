package repository

import (
	"context"
	"testing"

	"tastebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	createTestIngredient(t, db, "Carrot", "g")
	createTestIngredient(t, db, "carrot juice", "ml")
	createTestIngredient(t, db, "potato", "g")

	t.Run("Prefix match is case-insensitive", func(t *testing.T) {
		got, err := repo.Search(ctx, "car", 50)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Carrot", got[0].Name)
		assert.Equal(t, "carrot juice", got[1].Name)
	})

	t.Run("No match", func(t *testing.T) {
		got, err := repo.Search(ctx, "zucchini", 50)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Empty prefix lists everything", func(t *testing.T) {
		got, err := repo.Search(ctx, "", 50)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Limit caps results", func(t *testing.T) {
		got, err := repo.Search(ctx, "", 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestIngredientRepository_BulkUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	createTestIngredient(t, db, "salt", "g")

	inserted, err := repo.BulkUpsert(ctx, []models.Ingredient{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "pepper", MeasurementUnit: "g"},
		{Name: "salt", MeasurementUnit: "tsp"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	var total int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&total).Error)
	assert.Equal(t, int64(3), total)
}

func TestIngredientRepository_CreateDuplicatePair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Ingredient{Name: "flour", MeasurementUnit: "g"}))

	// Same name with another unit is a distinct ingredient.
	require.NoError(t, repo.Create(ctx, &models.Ingredient{Name: "flour", MeasurementUnit: "cup"}))

	err := repo.Create(ctx, &models.Ingredient{Name: "flour", MeasurementUnit: "g"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
