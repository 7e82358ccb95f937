package server

import (
	"github.com/gofiber/fiber/v2"
)

const ingredientSearchLimit = 50

// GetIngredients handles GET /api/ingredients with an optional name-prefix
// filter used by the recipe form's autocomplete.
func (s *Server) GetIngredients(c *fiber.Ctx) error {
	name := c.Query("name")

	ingredients, err := s.ingredientRepo.Search(c.Context(), name, ingredientSearchLimit)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(ingredients)
}

// GetIngredient handles GET /api/ingredients/:id
func (s *Server) GetIngredient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ingredient, err := s.ingredientRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(ingredient)
}
