package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/memoshare/memoshare/internal/webserver/controller/auth"
	"github.com/memoshare/memoshare/internal/webserver/controller/memo"
	"github.com/memoshare/memoshare/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth                     *auth.Controller
	Memos                    *memo.Controller
	AuthenticationMiddleware func(c *fiber.Ctx) error
}

func SetupControllers(cfg Config, db *gorm.DB) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	memosRepository := &model.MemoRepository{DB: db}
	sharesRepository := &model.ShareRepository{DB: db}

	authCfg := auth.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		Secret:            cfg.JwtSecret,
		SessionTimeout:    cfg.SessionTimeout,
	}

	return Controllers{
		Auth:                     auth.NewController(usersRepository, authCfg),
		Memos:                    memo.NewController(memosRepository, sharesRepository, usersRepository),
		AuthenticationMiddleware: RequireAuthentication(cfg.JwtSecret),
	}
}
