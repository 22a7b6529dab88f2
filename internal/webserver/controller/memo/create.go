package memo

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/memoshare/memoshare/internal/webserver/jwtclaimsreader"
	"github.com/memoshare/memoshare/internal/webserver/model"
)

// Create stores a new memo authored by the requesting user. The isShared
// field of the request is accepted for wire compatibility but ignored,
// as shared status is derived from the grant set and a new memo has none.
func (m *Controller) Create(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	var request memoRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	if request.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title cannot be empty")
	}

	memo := model.Memo{
		ID:       uuid.NewString(),
		Title:    request.Title,
		Content:  request.Content,
		AuthorID: session.ID,
	}

	if err := m.memos.Create(&memo); err != nil {
		return fiber.ErrInternalServerError
	}

	created, err := m.memos.FindByID(memo.ID)
	if err != nil || created == nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(*created))
}
