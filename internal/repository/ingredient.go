package repository

import (
	"context"
	"errors"

	"tastebook/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IngredientRepository defines persistence operations for ingredients.
type IngredientRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Ingredient, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	Search(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
	BulkUpsert(ctx context.Context, ingredients []models.Ingredient) (int64, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository returns a new IngredientRepository implementation.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := readDB(r.db).WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ingredient", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	if err := readDB(r.db).WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}

// Search lists ingredients whose name starts with the given prefix,
// case-insensitively. An empty prefix lists everything up to limit.
func (r *ingredientRepository) Search(ctx context.Context, namePrefix string, limit int) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	q := readDB(r.db).WithContext(ctx).Order("name ASC")
	if namePrefix != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", namePrefix+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ingredients).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Ingredient with this name and unit already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// BulkUpsert inserts ingredients in batches, skipping rows that collide with
// an existing (name, measurement_unit) pair. Returns the number inserted.
func (r *ingredientRepository) BulkUpsert(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
			DoNothing: true,
		}).
		CreateInBatches(ingredients, 500)
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}
