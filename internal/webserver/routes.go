package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Post("/auth/register", controllers.Auth.Register)
	app.Post("/auth/login", controllers.Auth.Login)

	memosGroup := app.Group("/memos", controllers.AuthenticationMiddleware)

	memosGroup.Get("/my", controllers.Memos.ListMine)
	memosGroup.Get("/shared", controllers.Memos.ListShared)
	memosGroup.Get("/:id", controllers.Memos.Get)
	memosGroup.Post("/", controllers.Memos.Create)
	memosGroup.Put("/:id", controllers.Memos.Update)
	memosGroup.Delete("/:id", controllers.Memos.Delete)
	memosGroup.Post("/:id/share", controllers.Memos.Share)
	memosGroup.Delete("/:id/share/:userId", controllers.Memos.Unshare)
}
