package memo

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver/jwtclaimsreader"
)

// Get returns a single memo, as long as the requesting user authored it
// or it has been shared with them.
func (m *Controller) Get(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	memo, err := m.memos.FindByID(c.Params("id"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if memo == nil {
		return fiber.ErrNotFound
	}

	if !memo.ReadableBy(session.ID) {
		return fiber.ErrForbidden
	}

	return c.JSON(toResponse(*memo))
}
