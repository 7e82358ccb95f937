package repository

import (
	"context"

	"tastebook/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines persistence operations for the directional
// follower-author relation.
type SubscriptionRepository interface {
	Add(ctx context.Context, followerID, authorID uint) error
	Remove(ctx context.Context, followerID, authorID uint) error
	Exists(ctx context.Context, followerID, authorID uint) (bool, error)
	ListAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository returns a new SubscriptionRepository implementation.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Add(ctx context.Context, followerID, authorID uint) error {
	sub := models.Subscription{FollowerID: followerID, AuthorID: authorID}
	if err := r.db.WithContext(ctx).Create(&sub).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already subscribed to this author")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *subscriptionRepository) Remove(ctx context.Context, followerID, authorID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&models.Subscription{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Subscription to author", authorID)
	}
	return nil
}

func (r *subscriptionRepository) Exists(ctx context.Context, followerID, authorID uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.Subscription{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListAuthors pages through the authors the follower subscribes to, newest
// subscription first, with each author's recipes preloaded newest first.
func (r *subscriptionRepository) ListAuthors(ctx context.Context, followerID uint, limit, offset int) ([]models.User, int64, error) {
	db := readDB(r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Subscription{}).
		Where("follower_id = ?", followerID).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var authors []models.User
	query := db.
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.follower_id = ?", followerID).
		Order("subscriptions.created_at DESC, users.id DESC").
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order("pub_date DESC, id DESC")
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Offset(offset).Find(&authors).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return authors, total, nil
}
