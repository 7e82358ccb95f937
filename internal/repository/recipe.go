// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"tastebook/internal/cache"
	"tastebook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter captures the supported recipe listing filters. Zero values
// mean "no filter". CurrentUserID drives the computed per-user flags and is
// independent of the relation filters.
type RecipeFilter struct {
	AuthorID      uint
	TagSlugs      []string
	FavoritedBy   uint
	InCartOf      uint
	CurrentUserID uint
	Limit         int
	Offset        int
}

// RecipeRepository defines persistence operations for recipes and their
// tag/ingredient relations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]*models.Recipe, int64, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// applyRecipeFlags adds subqueries computing the per-user relation flags in
// the same query. Anonymous readers always get false for both.
func (r *recipeRepository) applyRecipeFlags(db *gorm.DB, currentUserID uint) *gorm.DB {
	if currentUserID != 0 {
		return db.Select(
			"recipes.*, "+
				"EXISTS(SELECT 1 FROM favorites WHERE favorites.recipe_id = recipes.id AND favorites.user_id = ?) as is_favorited, "+
				"EXISTS(SELECT 1 FROM shopping_cart_entries WHERE shopping_cart_entries.recipe_id = recipes.id AND shopping_cart_entries.user_id = ?) as is_in_shopping_cart",
			currentUserID, currentUserID,
		)
	}
	return db.Select("recipes.*, false as is_favorited, false as is_in_shopping_cart")
}

// applyFilter appends the WHERE clauses for a listing filter. Membership
// filters go through IN subqueries so multi-tag matches never duplicate rows.
func (r *recipeRepository) applyFilter(db *gorm.DB, filter RecipeFilter) *gorm.DB {
	if filter.AuthorID != 0 {
		db = db.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		db = db.Where(
			"recipes.id IN (SELECT recipe_tags.recipe_id FROM recipe_tags JOIN tags ON tags.id = recipe_tags.tag_id WHERE tags.slug IN ?)",
			filter.TagSlugs,
		)
	}
	if filter.FavoritedBy != 0 {
		db = db.Where(
			"recipes.id IN (SELECT favorites.recipe_id FROM favorites WHERE favorites.user_id = ?)",
			filter.FavoritedBy,
		)
	}
	if filter.InCartOf != 0 {
		db = db.Where(
			"recipes.id IN (SELECT shopping_cart_entries.recipe_id FROM shopping_cart_entries WHERE shopping_cart_entries.user_id = ?)",
			filter.InCartOf,
		)
	}
	return db
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := recipe.Tags
		ingredients := recipe.Ingredients
		recipe.Tags = nil
		recipe.Ingredients = nil

		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := r.replaceRelations(tx, recipe.ID, tags, ingredients); err != nil {
			return err
		}
		recipe.Tags = tags
		recipe.Ingredients = ingredients
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// replaceRelations wholesale-replaces a recipe's tag links and ingredient
// rows inside the caller's transaction. Stale rows are removed first so the
// stored set always mirrors the submitted one exactly.
func (r *recipeRepository) replaceRelations(tx *gorm.DB, recipeID uint, tags []models.Tag, ingredients []models.RecipeIngredient) error {
	if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipeID).Error; err != nil {
		return err
	}
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	for _, tag := range tags {
		if err := tx.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", recipeID, tag.ID).Error; err != nil {
			return err
		}
	}
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].RecipeID = recipeID
	}
	if len(ingredients) > 0 {
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Recipe, error) {
	var recipe models.Recipe

	fetch := func() error {
		return r.applyRecipeFlags(readDB(r.db).WithContext(ctx), currentUserID).
			Preload("Author").
			Preload("Tags").
			Preload("Ingredients.Ingredient").
			First(&recipe, id).Error
	}

	var err error
	if currentUserID == 0 {
		// The anonymous projection carries no per-user state, so it is safe
		// to share through the cache.
		err = cache.CacheAside(ctx, cache.RecipeKey(id), &recipe, cache.RecipeTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recipe", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]*models.Recipe, int64, error) {
	db := readDB(r.db).WithContext(ctx)

	var total int64
	countQuery := r.applyFilter(db.Model(&models.Recipe{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var recipes []*models.Recipe
	query := r.applyFilter(r.applyRecipeFlags(db, filter.CurrentUserID), filter).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.pub_date DESC, recipes.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Offset(filter.Offset).Find(&recipes).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return recipes, total, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := recipe.Tags
		ingredients := recipe.Ingredients
		recipe.Tags = nil
		recipe.Ingredients = nil

		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if err := r.replaceRelations(tx, recipe.ID, tags, ingredients); err != nil {
			return err
		}
		recipe.Tags = tags
		recipe.Ingredients = ingredients
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateRecipe(ctx, recipe.ID)
	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.ShoppingCartEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateRecipe(ctx, id)
	return nil
}

func (r *recipeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
