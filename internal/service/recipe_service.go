package service

import (
	"context"
	"fmt"

	"tastebook/internal/models"
	"tastebook/internal/repository"
)

const (
	maxRecipeNameLen = 200
	maxRecipeTextLen = 10000
	maxCookingTime   = 32000
)

// RecipeIngredientInput is the ingredient reference in a recipe payload.
type RecipeIngredientInput struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

type CreateRecipeInput struct {
	AuthorID    uint
	Name        string
	Text        string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []RecipeIngredientInput
}

type UpdateRecipeInput struct {
	UserID      uint
	RecipeID    uint
	Name        string
	Text        string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []RecipeIngredientInput
}

type ListRecipesInput struct {
	AuthorID         uint
	TagSlugs         []string
	IsFavorited      bool
	IsInShoppingCart bool
	CurrentUserID    uint
	Limit            int
	Offset           int
}

type RecipeService struct {
	recipeRepo     repository.RecipeRepository
	tagRepo        repository.TagRepository
	ingredientRepo repository.IngredientRepository
	saveImage      func(dataURI string) (string, error)
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	tagRepo repository.TagRepository,
	ingredientRepo repository.IngredientRepository,
	images *ImageService,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		saveImage:      images.SaveDataURI,
	}
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uint, currentUserID uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, id, currentUserID)
}

func (s *RecipeService) ListRecipes(ctx context.Context, in ListRecipesInput) ([]*models.Recipe, int64, error) {
	filter := repository.RecipeFilter{
		AuthorID:      in.AuthorID,
		TagSlugs:      in.TagSlugs,
		CurrentUserID: in.CurrentUserID,
		Limit:         in.Limit,
		Offset:        in.Offset,
	}
	// Relation filters only mean something for an authenticated requester;
	// anonymous requests ignore them rather than erroring.
	if in.CurrentUserID != 0 {
		if in.IsFavorited {
			filter.FavoritedBy = in.CurrentUserID
		}
		if in.IsInShoppingCart {
			filter.InCartOf = in.CurrentUserID
		}
	}
	return s.recipeRepo.List(ctx, filter)
}

func (s *RecipeService) CreateRecipe(ctx context.Context, in CreateRecipeInput) (*models.Recipe, error) {
	if err := s.validatePayload(in.Name, in.Text, in.CookingTime, in.TagIDs, in.Ingredients); err != nil {
		return nil, err
	}
	if in.Image == "" {
		return nil, models.NewValidationError("Image is required")
	}

	tags, ingredients, err := s.resolveRelations(ctx, in.TagIDs, in.Ingredients)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.saveImage(in.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    in.AuthorID,
		Name:        in.Name,
		Text:        in.Text,
		Image:       imageURL,
		CookingTime: in.CookingTime,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(ctx, recipe.ID, in.AuthorID)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, in UpdateRecipeInput) (*models.Recipe, error) {
	existing, err := s.recipeRepo.GetByID(ctx, in.RecipeID, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != in.UserID {
		return nil, models.NewUnauthorizedError("Only the author can edit this recipe")
	}

	if err := s.validatePayload(in.Name, in.Text, in.CookingTime, in.TagIDs, in.Ingredients); err != nil {
		return nil, err
	}

	tags, ingredients, err := s.resolveRelations(ctx, in.TagIDs, in.Ingredients)
	if err != nil {
		return nil, err
	}

	imageURL := existing.Image
	if in.Image != "" {
		imageURL, err = s.saveImage(in.Image)
		if err != nil {
			return nil, err
		}
	}

	existing.Name = in.Name
	existing.Text = in.Text
	existing.Image = imageURL
	existing.CookingTime = in.CookingTime
	existing.Tags = tags
	existing.Ingredients = ingredients

	if err := s.recipeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(ctx, existing.ID, in.UserID)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uint) error {
	existing, err := s.recipeRepo.GetByID(ctx, recipeID, userID)
	if err != nil {
		return err
	}
	if existing.AuthorID != userID {
		return models.NewUnauthorizedError("Only the author can delete this recipe")
	}
	return s.recipeRepo.Delete(ctx, recipeID)
}

// validatePayload enforces the shared create/update rules: required fields,
// bounds, and no repeated tag or ingredient references.
func (s *RecipeService) validatePayload(name, text string, cookingTime int, tagIDs []uint, ingredients []RecipeIngredientInput) error {
	if name == "" {
		return models.NewValidationError("Name is required")
	}
	if len(name) > maxRecipeNameLen {
		return models.NewValidationError(fmt.Sprintf("Name too long (max %d characters)", maxRecipeNameLen))
	}
	if text == "" {
		return models.NewValidationError("Text is required")
	}
	if len(text) > maxRecipeTextLen {
		return models.NewValidationError(fmt.Sprintf("Text too long (max %d characters)", maxRecipeTextLen))
	}
	if cookingTime < 1 {
		return models.NewValidationError("Cooking time must be at least 1 minute")
	}
	if cookingTime > maxCookingTime {
		return models.NewValidationError("Cooking time is unreasonably large")
	}
	if len(tagIDs) == 0 {
		return models.NewValidationError("At least one tag is required")
	}
	if len(ingredients) == 0 {
		return models.NewValidationError("At least one ingredient is required")
	}

	seenTags := make(map[uint]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seenTags[id]; dup {
			return models.NewValidationError("Tags must not repeat")
		}
		seenTags[id] = struct{}{}
	}

	seenIngredients := make(map[uint]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if _, dup := seenIngredients[ing.ID]; dup {
			return models.NewValidationError("Ingredients must not repeat")
		}
		seenIngredients[ing.ID] = struct{}{}
		if ing.Amount < 1 {
			return models.NewValidationError("Ingredient amount must be at least 1")
		}
	}
	return nil
}

// resolveRelations loads the referenced tags and ingredients, rejecting any
// id that does not exist before anything is persisted.
func (s *RecipeService) resolveRelations(ctx context.Context, tagIDs []uint, ingredients []RecipeIngredientInput) ([]models.Tag, []models.RecipeIngredient, error) {
	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(tagIDs) {
		found := make(map[uint]struct{}, len(tags))
		for _, t := range tags {
			found[t.ID] = struct{}{}
		}
		for _, id := range tagIDs {
			if _, ok := found[id]; !ok {
				return nil, nil, models.NewValidationError(fmt.Sprintf("Tag with ID %d does not exist", id))
			}
		}
	}

	ingredientIDs := make([]uint, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
	}
	stored, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(stored) != len(ingredientIDs) {
		found := make(map[uint]struct{}, len(stored))
		for _, ing := range stored {
			found[ing.ID] = struct{}{}
		}
		for _, id := range ingredientIDs {
			if _, ok := found[id]; !ok {
				return nil, nil, models.NewValidationError(fmt.Sprintf("Ingredient with ID %d does not exist", id))
			}
		}
	}

	rows := make([]models.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, models.RecipeIngredient{
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	return tags, rows, nil
}
