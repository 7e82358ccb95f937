package repository

import (
	"context"

	"tastebook/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for the user-recipe
// favorite relation.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) error
	Exists(ctx context.Context, userID, recipeID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, recipeID uint) error {
	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Recipe is already in favorites")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, recipeID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Favorite for recipe", recipeID)
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
