package server

import (
	"soapbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateVote handles POST /votes/
func (s *Server) CreateVote(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"post_id"`
		Dir    int  `json:"dir"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondAppError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondAppError(c,
			models.NewValidationError("post_id is required"))
	}

	message, err := s.voteService.Cast(c.Context(), s.callerID(c), req.PostID, req.Dir)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}
