package memo

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver/jwtclaimsreader"
)

// ListMine returns all memos authored by the requesting user.
func (m *Controller) ListMine(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	memos, err := m.memos.ListByAuthor(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(toResponses(memos))
}

// ListShared returns all memos other users have shared with the
// requesting user.
func (m *Controller) ListShared(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	memos, err := m.memos.ListSharedWith(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(toResponses(memos))
}
