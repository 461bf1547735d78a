package server

import (
	"soapbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /users/
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.Context(), req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.Get(c.Context(), id)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(user)
}
