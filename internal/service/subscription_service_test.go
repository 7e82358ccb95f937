package service

import (
	"context"
	"fmt"
	"testing"

	"tastebook/internal/models"
	"tastebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func someAuthor(id uint) *models.User {
	return &models.User{
		ID:       id,
		Username: fmt.Sprintf("author%d", id),
		Email:    fmt.Sprintf("author%d@example.com", id),
	}
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Self subscription rejected", func(t *testing.T) {
		svc := NewSubscriptionService(&stubUserRepo{}, &stubSubscriptionRepo{}, &stubRecipeRepo{})

		_, err := svc.Subscribe(ctx, 1, 1, 0)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Equal(t, "You cannot subscribe to yourself", appErr.Message)
	})

	t.Run("Missing author", func(t *testing.T) {
		userRepo := &stubUserRepo{
			getByIDFn: func(_ context.Context, id uint, _ uint) (*models.User, error) {
				return nil, models.NewNotFoundError("User", id)
			},
		}
		svc := NewSubscriptionService(userRepo, &stubSubscriptionRepo{}, &stubRecipeRepo{})

		_, err := svc.Subscribe(ctx, 1, 404, 0)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Returns author view with recipes", func(t *testing.T) {
		userRepo := &stubUserRepo{
			getByIDFn: func(_ context.Context, id uint, _ uint) (*models.User, error) {
				return someAuthor(id), nil
			},
		}
		subRepo := &stubSubscriptionRepo{
			addFn: func(context.Context, uint, uint) error { return nil },
		}
		var gotFilter repository.RecipeFilter
		recipeRepo := &stubRecipeRepo{
			listFn: func(_ context.Context, filter repository.RecipeFilter) ([]*models.Recipe, int64, error) {
				gotFilter = filter
				return []*models.Recipe{
					{ID: 10, Name: "Newest"},
					{ID: 9, Name: "Older"},
				}, 5, nil
			},
		}
		svc := NewSubscriptionService(userRepo, subRepo, recipeRepo)

		view, err := svc.Subscribe(ctx, 1, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(2), view.ID)
		assert.True(t, view.IsSubscribed)
		assert.Equal(t, int64(5), view.RecipesCount)
		require.Len(t, view.Recipes, 2)
		assert.Equal(t, "Newest", view.Recipes[0].Name)
		assert.Equal(t, uint(2), gotFilter.AuthorID)
		assert.Equal(t, 2, gotFilter.Limit)
	})

	t.Run("Zero limit falls back to default", func(t *testing.T) {
		userRepo := &stubUserRepo{
			getByIDFn: func(_ context.Context, id uint, _ uint) (*models.User, error) {
				return someAuthor(id), nil
			},
		}
		subRepo := &stubSubscriptionRepo{
			addFn: func(context.Context, uint, uint) error { return nil },
		}
		var gotFilter repository.RecipeFilter
		recipeRepo := &stubRecipeRepo{
			listFn: func(_ context.Context, filter repository.RecipeFilter) ([]*models.Recipe, int64, error) {
				gotFilter = filter
				return nil, 0, nil
			},
		}
		svc := NewSubscriptionService(userRepo, subRepo, recipeRepo)

		view, err := svc.Subscribe(ctx, 1, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultRecipesLimit, gotFilter.Limit)
		assert.NotNil(t, view.Recipes)
		assert.Empty(t, view.Recipes)
	})

	t.Run("Duplicate subscription conflicts", func(t *testing.T) {
		userRepo := &stubUserRepo{
			getByIDFn: func(_ context.Context, id uint, _ uint) (*models.User, error) {
				return someAuthor(id), nil
			},
		}
		subRepo := &stubSubscriptionRepo{
			addFn: func(context.Context, uint, uint) error {
				return models.NewConflictError("Already subscribed to this author")
			},
		}
		svc := NewSubscriptionService(userRepo, subRepo, &stubRecipeRepo{})

		_, err := svc.Subscribe(ctx, 1, 2, 0)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Self unsubscribe rejected", func(t *testing.T) {
		svc := NewSubscriptionService(&stubUserRepo{}, &stubSubscriptionRepo{}, &stubRecipeRepo{})

		err := svc.Unsubscribe(ctx, 3, 3)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Missing pair surfaces repo error", func(t *testing.T) {
		userRepo := &stubUserRepo{
			getByIDFn: func(_ context.Context, id uint, _ uint) (*models.User, error) {
				return someAuthor(id), nil
			},
		}
		subRepo := &stubSubscriptionRepo{
			removeFn: func(_ context.Context, _, authorID uint) error {
				return models.NewNotFoundError("Subscription to author", authorID)
			},
		}
		svc := NewSubscriptionService(userRepo, subRepo, &stubRecipeRepo{})

		err := svc.Unsubscribe(ctx, 1, 2)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.Contains(t, appErr.Message, "Subscription to author")
	})
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	author := *someAuthor(2)
	author.Recipes = []models.Recipe{
		{ID: 30, Name: "Third"},
		{ID: 20, Name: "Second"},
		{ID: 10, Name: "First"},
	}

	subRepo := &stubSubscriptionRepo{
		listAuthorsFn: func(_ context.Context, _ uint, _, _ int) ([]models.User, int64, error) {
			return []models.User{author}, 1, nil
		},
	}
	svc := NewSubscriptionService(&stubUserRepo{}, subRepo, &stubRecipeRepo{})
	ctx := context.Background()

	t.Run("Recipes capped at limit, count uncapped", func(t *testing.T) {
		views, total, err := svc.ListSubscriptions(ctx, 1, 10, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, views, 1)
		assert.Equal(t, int64(3), views[0].RecipesCount)
		require.Len(t, views[0].Recipes, 2)
		assert.Equal(t, "Third", views[0].Recipes[0].Name)
		assert.True(t, views[0].IsSubscribed)
	})

	t.Run("Default limit applies", func(t *testing.T) {
		views, _, err := svc.ListSubscriptions(ctx, 1, 10, 0, 0)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Len(t, views[0].Recipes, 3)
	})
}
