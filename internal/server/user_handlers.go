package server

import (
	"tastebook/internal/models"
	"tastebook/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 10)

	users, total, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset, currentUserID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(pagedResponse(total, users))
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID, userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	user, err := s.userService.GetUserByID(c.Context(), id, currentUserID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// SetPassword handles POST /api/users/set_password
func (s *Server) SetPassword(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ChangePassword(c.Context(), service.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Subscribe handles POST /api/users/:id/subscribe
func (s *Server) Subscribe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	recipesLimit := c.QueryInt("recipes_limit", 0)

	author, err := s.subscriptionService.Subscribe(c.Context(), userID, authorID, recipesLimit)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(author)
}

// Unsubscribe handles DELETE /api/users/:id/subscribe
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.subscriptionService.Unsubscribe(c.Context(), userID, authorID); err != nil {
		return respondToggleRemoveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptions handles GET /api/users/subscriptions
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 10)
	recipesLimit := c.QueryInt("recipes_limit", 0)

	authors, total, err := s.subscriptionService.ListSubscriptions(c.Context(), userID, p.Limit, p.Offset, recipesLimit)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(pagedResponse(total, authors))
}
