package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/memoshare/memoshare/internal/webserver"
	"github.com/memoshare/memoshare/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Errorf("Error parsing configuration from environment variables: %w", err))
	}

	if cfg.DbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Error retrieving user home dir")
		}
		if err = os.MkdirAll(filepath.Join(homeDir, "memoshare"), os.ModePerm); err != nil {
			log.Fatal(fmt.Errorf("Couldn't create %s, exiting", filepath.Join(homeDir, "memoshare")))
		}
		cfg.DbPath = filepath.Join(homeDir, "memoshare", "memoshare.db")
	}

	db := infrastructure.Connect(cfg.DbPath)

	webserverConfig := webserver.Config{
		JwtSecret:         []byte(cfg.JwtSecret),
		Port:              cfg.Port,
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTimeout:    cfg.SessionTimeout,
	}

	controllers := webserver.SetupControllers(webserverConfig, db)
	app := webserver.New(webserverConfig, controllers)

	fmt.Printf("memoshare version %s started listening on port %d\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
