package server

import (
	"tastebook/internal/models"
	"tastebook/internal/service"

	"github.com/gofiber/fiber/v2"
)

type recipePayload struct {
	Name        string                          `json:"name"`
	Text        string                          `json:"text"`
	Image       string                          `json:"image"`
	CookingTime int                             `json:"cooking_time"`
	Tags        []uint                          `json:"tags"`
	Ingredients []service.RecipeIngredientInput `json:"ingredients"`
}

// GetRecipes handles GET /api/recipes
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 10)

	in := service.ListRecipesInput{
		CurrentUserID:    currentUserID,
		Limit:            p.Limit,
		Offset:           p.Offset,
		IsFavorited:      c.QueryBool("is_favorited"),
		IsInShoppingCart: c.QueryBool("is_in_shopping_cart"),
	}
	if author := c.QueryInt("author"); author > 0 {
		in.AuthorID = uint(author)
	}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		if len(slug) > 0 {
			in.TagSlugs = append(in.TagSlugs, string(slug))
		}
	}

	recipes, total, err := s.recipeService.ListRecipes(c.Context(), in)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(pagedResponse(total, recipes))
}

// GetRecipe handles GET /api/recipes/:id
func (s *Server) GetRecipe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	recipe, err := s.recipeService.GetRecipe(c.Context(), id, currentUserID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(recipe)
}

// CreateRecipe handles POST /api/recipes
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req recipePayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	recipe, err := s.recipeService.CreateRecipe(c.Context(), service.CreateRecipeInput{
		AuthorID:    userID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		TagIDs:      req.Tags,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

// UpdateRecipe handles PUT and PATCH /api/recipes/:id
func (s *Server) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req recipePayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	recipe, err := s.recipeService.UpdateRecipe(c.Context(), service.UpdateRecipeInput{
		UserID:      userID,
		RecipeID:    id,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		TagIDs:      req.Tags,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(recipe)
}

// DeleteRecipe handles DELETE /api/recipes/:id
func (s *Server) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.recipeService.DeleteRecipe(c.Context(), userID, id); err != nil {
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
