package repository

import (
	"context"
	"time"

	"tastebook/internal/models"
	"tastebook/internal/observability"

	"gorm.io/gorm"
)

// ShoppingCartRepository defines persistence operations for cart entries and
// the shopping list aggregation built from them.
type ShoppingCartRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) error
	Exists(ctx context.Context, userID, recipeID uint) (bool, error)
	Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type shoppingCartRepository struct {
	db *gorm.DB
}

// NewShoppingCartRepository returns a new ShoppingCartRepository implementation.
func NewShoppingCartRepository(db *gorm.DB) ShoppingCartRepository {
	return &shoppingCartRepository{db: db}
}

func (r *shoppingCartRepository) Add(ctx context.Context, userID, recipeID uint) error {
	entry := models.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Recipe is already in shopping cart")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *shoppingCartRepository) Remove(ctx context.Context, userID, recipeID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCartEntry{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Cart entry for recipe", recipeID)
	}
	return nil
}

func (r *shoppingCartRepository) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.ShoppingCartEntry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Aggregate sums ingredient amounts across every recipe in the user's cart,
// grouping by (name, unit) so same-named ingredients with different units
// stay distinct. Ordered by name for a stable report.
func (r *shoppingCartRepository) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	start := time.Now()
	var items []models.ShoppingListItem
	err := readDB(r.db).WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&items).Error
	observability.ObserveQuery("aggregate", "shopping_cart_entries", start)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
