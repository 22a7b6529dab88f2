package memo

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver/jwtclaimsreader"
)

// Delete removes a memo and every share that hangs off it. Only its
// author may do so.
func (m *Controller) Delete(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	memo, err := m.memos.FindByID(c.Params("id"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if memo == nil {
		return fiber.ErrNotFound
	}

	if memo.AuthorID != session.ID {
		return fiber.ErrForbidden
	}

	if err := m.memos.Delete(memo.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
