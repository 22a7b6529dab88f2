package main

import "time"

type Config struct {
	DbPath            string        `env:"DBPATH"`
	Port              int           `env:"PORT" env-default:"3000"`
	JwtSecret         string        `env:"JWT_SECRET" env-required:"true"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
}
