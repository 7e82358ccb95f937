package repository

import (
	"context"
	"errors"

	"tastebook/internal/cache"
	"tastebook/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := readDB(r.db).WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := readDB(r.db).WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := cache.CacheAside(ctx, cache.TagListKey, &tags, cache.TagListTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Tag with this name or slug already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateTags(ctx)
	return nil
}
