package server

import (
	"errors"

	"soapbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/skip query parameters.
type Pagination struct {
	Limit int
	Skip  int
}

const (
	defaultPaginationLimit = 10
	maxPaginationLimit     = 100
)

// parsePagination extracts the limit and skip query parameters.
func parsePagination(c *fiber.Ctx) Pagination {
	limit := c.QueryInt("limit", defaultPaginationLimit)
	if limit <= 0 {
		limit = defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}

	return Pagination{
		Limit: limit,
		Skip:  skip,
	}
}

// parseID extracts the id route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// callerID returns the authenticated user ID placed in locals by AuthRequired.
func (s *Server) callerID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
