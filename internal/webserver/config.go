package webserver

import "time"

type Config struct {
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret         []byte
	Port              int
	MinPasswordLength int
	SessionTimeout    time.Duration
}
