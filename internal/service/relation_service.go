package service

import (
	"context"

	"tastebook/internal/models"
	"tastebook/internal/repository"
)

// RelationService implements the favorite and shopping-cart toggles. Both
// relations share the same shape: add fails on an existing pair, remove
// fails on a missing one, and a successful add answers with the compact
// recipe view.
type RelationService struct {
	recipeRepo   repository.RecipeRepository
	favoriteRepo repository.FavoriteRepository
	cartRepo     repository.ShoppingCartRepository
}

func NewRelationService(
	recipeRepo repository.RecipeRepository,
	favoriteRepo repository.FavoriteRepository,
	cartRepo repository.ShoppingCartRepository,
) *RelationService {
	return &RelationService{
		recipeRepo:   recipeRepo,
		favoriteRepo: favoriteRepo,
		cartRepo:     cartRepo,
	}
}

func (s *RelationService) AddFavorite(ctx context.Context, userID, recipeID uint) (*models.RecipeSummary, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Add(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	summary := recipe.Summary()
	return &summary, nil
}

func (s *RelationService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	if err := s.ensureRecipeExists(ctx, recipeID); err != nil {
		return err
	}
	return s.favoriteRepo.Remove(ctx, userID, recipeID)
}

func (s *RelationService) AddToCart(ctx context.Context, userID, recipeID uint) (*models.RecipeSummary, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Add(ctx, userID, recipeID); err != nil {
		return nil, err
	}
	summary := recipe.Summary()
	return &summary, nil
}

func (s *RelationService) RemoveFromCart(ctx context.Context, userID, recipeID uint) error {
	if err := s.ensureRecipeExists(ctx, recipeID); err != nil {
		return err
	}
	return s.cartRepo.Remove(ctx, userID, recipeID)
}

func (s *RelationService) ensureRecipeExists(ctx context.Context, recipeID uint) error {
	exists, err := s.recipeRepo.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Recipe", recipeID)
	}
	return nil
}
