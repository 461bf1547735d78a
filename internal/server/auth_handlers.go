package server

import (
	"soapbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /login.
// Credentials arrive form-encoded with the email in the "username" field,
// matching the OAuth2 password flow shape most API clients send.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondAppError(c,
			models.NewValidationError("Username and password are required"))
	}

	accessToken, err := s.userService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}
