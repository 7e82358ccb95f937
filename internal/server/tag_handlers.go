package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(tags)
}

// GetTag handles GET /api/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(tag)
}
