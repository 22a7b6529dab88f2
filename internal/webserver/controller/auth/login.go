package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/memoshare/memoshare/internal/webserver/model"
)

// Login checks the posted credentials and hands back a signed bearer token.
func (a *Controller) Login(c *fiber.Ctx) error {
	var request credentials

	if err := c.BodyParser(&request); err != nil {
		return fiber.ErrBadRequest
	}

	user, err := a.repository.FindByUsername(strings.ToLower(request.Username))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || user.Password != model.Hash(request.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Wrong username or password")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(session{
		Token:       signedToken,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	})
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": map[string]string{
			"ID":          user.ID,
			"Username":    user.Username,
			"DisplayName": user.DisplayName,
		},
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
