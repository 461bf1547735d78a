package server

import (
	"soapbox/internal/models"
	"soapbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts/
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c)
	search := c.Query("search")

	posts, err := s.postService.List(c.Context(), search, page.Limit, page.Skip)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.Context(), id)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /posts/
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Published *bool  `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), s.callerID(c), service.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Published *bool  `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondAppError(c,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), s.callerID(c), id, service.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), s.callerID(c), id); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
