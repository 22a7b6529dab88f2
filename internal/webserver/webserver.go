package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "memoshare",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	routes(app, controllers)

	return app
}

// errorHandler turns every fiber error into the JSON body API clients
// expect, keeping the error's status code.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
