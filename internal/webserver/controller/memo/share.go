package memo

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver/jwtclaimsreader"
	"github.com/memoshare/memoshare/internal/webserver/model"
)

// Share grants another user read access to a memo. Only the author may
// grant, the grantee must exist, and granting to oneself is answered
// with success without creating anything.
func (m *Controller) Share(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	var request shareRequest
	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
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

	if request.SharedWithUserID == session.ID {
		return c.SendStatus(fiber.StatusOK)
	}

	grantee, err := m.users.FindByID(request.SharedWithUserID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if grantee == nil {
		return fiber.NewError(fiber.StatusBadRequest, "No user with that identifier exists")
	}

	if err := m.shares.Grant(memo.ID, grantee.ID); err != nil {
		if errors.Is(err, model.ErrDuplicateShare) {
			return fiber.NewError(fiber.StatusBadRequest, "Memo is already shared with that user")
		}
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusOK)
}

// Unshare revokes a previously granted share. Only the author may revoke.
func (m *Controller) Unshare(c *fiber.Ctx) error {
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

	if err := m.shares.Revoke(memo.ID, c.Params("userId")); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
