package memo

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver/jwtclaimsreader"
)

// Update overwrites the title and content of a memo. Only its author may
// do so. Shared status stays derived from the grant set and cannot be
// changed here.
func (m *Controller) Update(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	var request memoRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if request.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
	}

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

	memo.Title = request.Title
	memo.Content = request.Content

	if err := m.memos.Update(memo); err != nil {
		return fiber.ErrInternalServerError
	}

	updated, err := m.memos.FindByID(memo.ID)
	if err != nil || updated == nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(toResponse(*updated))
}
