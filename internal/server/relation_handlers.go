package server

import (
	"errors"
	"strings"

	"tastebook/internal/models"
	"tastebook/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// respondToggleRemoveError maps a failed relation remove onto the API
// contract: a missing path resource (recipe or user) is 404, a missing
// relation pair is 400.
func respondToggleRemoveError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" &&
		!strings.HasPrefix(appErr.Message, "Recipe ") && !strings.HasPrefix(appErr.Message, "User ") {
		return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
	}
	return respondAppError(c, err)
}

// AddFavorite handles POST /api/recipes/:id/favorite
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	summary, err := s.relationService.AddFavorite(c.Context(), userID, recipeID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// RemoveFavorite handles DELETE /api/recipes/:id/favorite
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.RemoveFavorite(c.Context(), userID, recipeID); err != nil {
		return respondToggleRemoveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddToCart handles POST /api/recipes/:id/shopping_cart
func (s *Server) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	summary, err := s.relationService.AddToCart(c.Context(), userID, recipeID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// RemoveFromCart handles DELETE /api/recipes/:id/shopping_cart
func (s *Server) RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	recipeID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.relationService.RemoveFromCart(c.Context(), userID, recipeID); err != nil {
		return respondToggleRemoveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadShoppingCart handles GET /api/recipes/download_shopping_cart
func (s *Server) DownloadShoppingCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	report, err := s.shoppingListService.BuildReport(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	observability.ShoppingListDownloads.Inc()
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="shopping_list.txt"`)
	return c.SendString(report)
}
