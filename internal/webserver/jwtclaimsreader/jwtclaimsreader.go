package jwtclaimsreader

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/memoshare/memoshare/internal/webserver/model"
)

// SessionData recovers the authenticated user from the JWT the auth
// middleware stored in the request context.
func SessionData(c *fiber.Ctx) model.User {
	var user model.User
	if t, ok := c.Locals("user").(*jwt.Token); ok {
		claims := t.Claims.(jwt.MapClaims)
		userDataMap, ok := claims["userdata"].(map[string]interface{})
		if !ok {
			return user
		}
		if value, ok := userDataMap["ID"].(string); ok {
			user.ID = value
		}
		if value, ok := userDataMap["Username"].(string); ok {
			user.Username = value
		}
		if value, ok := userDataMap["DisplayName"].(string); ok {
			user.DisplayName = value
		}
	}

	return user
}
