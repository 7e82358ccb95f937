package service

import (
	"context"

	"tastebook/internal/models"
	"tastebook/internal/repository"
)

// DefaultRecipesLimit caps how many recipe summaries ride along with each
// author in subscription responses when the client does not say otherwise.
const DefaultRecipesLimit = 3

type SubscriptionService struct {
	userRepo   repository.UserRepository
	subRepo    repository.SubscriptionRepository
	recipeRepo repository.RecipeRepository
}

func NewSubscriptionService(
	userRepo repository.UserRepository,
	subRepo repository.SubscriptionRepository,
	recipeRepo repository.RecipeRepository,
) *SubscriptionService {
	return &SubscriptionService{
		userRepo:   userRepo,
		subRepo:    subRepo,
		recipeRepo: recipeRepo,
	}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, followerID, authorID uint, recipesLimit int) (*models.SubscribedAuthor, error) {
	if followerID == authorID {
		return nil, models.NewValidationError("You cannot subscribe to yourself")
	}
	author, err := s.userRepo.GetByID(ctx, authorID, followerID)
	if err != nil {
		return nil, err
	}
	if err := s.subRepo.Add(ctx, followerID, authorID); err != nil {
		return nil, err
	}

	if recipesLimit <= 0 {
		recipesLimit = DefaultRecipesLimit
	}
	recipes, total, err := s.recipeRepo.List(ctx, repository.RecipeFilter{
		AuthorID: authorID,
		Limit:    recipesLimit,
	})
	if err != nil {
		return nil, err
	}

	view := projectAuthor(author, total)
	for _, r := range recipes {
		view.Recipes = append(view.Recipes, r.Summary())
	}
	return &view, nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, followerID, authorID uint) error {
	if followerID == authorID {
		return models.NewValidationError("You cannot unsubscribe from yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, authorID, followerID); err != nil {
		return err
	}
	return s.subRepo.Remove(ctx, followerID, authorID)
}

// ListSubscriptions pages through the follower's authors, attaching up to
// recipesLimit recipe summaries per author.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context, followerID uint, limit, offset, recipesLimit int) ([]models.SubscribedAuthor, int64, error) {
	authors, total, err := s.subRepo.ListAuthors(ctx, followerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if recipesLimit <= 0 {
		recipesLimit = DefaultRecipesLimit
	}

	views := make([]models.SubscribedAuthor, 0, len(authors))
	for i := range authors {
		author := &authors[i]
		view := projectAuthor(author, int64(len(author.Recipes)))
		for j, r := range author.Recipes {
			if j >= recipesLimit {
				break
			}
			view.Recipes = append(view.Recipes, r.Summary())
		}
		views = append(views, view)
	}
	return views, total, nil
}

// projectAuthor maps a user row into the subscription view. The requester is
// a subscriber wherever this view appears, so the flag is fixed true.
func projectAuthor(author *models.User, recipesCount int64) models.SubscribedAuthor {
	return models.SubscribedAuthor{
		Email:        author.Email,
		ID:           author.ID,
		Username:     author.Username,
		FirstName:    author.FirstName,
		LastName:     author.LastName,
		IsSubscribed: true,
		Recipes:      []models.RecipeSummary{},
		RecipesCount: recipesCount,
	}
}
