package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/memoshare/memoshare/internal/webserver/model"
)

// Register creates a new user account from the posted credentials.
// Usernames and email addresses are unique across the whole service.
func (a *Controller) Register(c *fiber.Ctx) error {
	var request registration

	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	user := model.User{
		ID:          uuid.NewString(),
		Username:    strings.ToLower(request.Username),
		Email:       request.Email,
		DisplayName: request.DisplayName,
		Password:    request.Password,
	}

	if errs := user.Validate(a.config.MinPasswordLength); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if exist, err := a.repository.FindByUsername(user.Username); err != nil {
		return fiber.ErrInternalServerError
	} else if exist != nil {
		return fiber.NewError(fiber.StatusConflict, "A user with this username already exists")
	}

	if exist, err := a.repository.FindByEmail(user.Email); err != nil {
		return fiber.ErrInternalServerError
	} else if exist != nil {
		return fiber.NewError(fiber.StatusConflict, "A user with this email address already exists")
	}

	user.Password = model.Hash(user.Password)
	if err := a.repository.Create(&user); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"userId":      user.ID,
		"username":    user.Username,
		"displayName": user.DisplayName,
	})
}
