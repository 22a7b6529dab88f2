package model

import (
	"crypto/sha256"
	"fmt"
	"net/mail"
	"regexp"
	"time"
)

const UsernamePattern = `^[A-z0-9_\-.]+$`

type User struct {
	ID          string `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Username    string `gorm:"type:text collate nocase; not null; uniqueIndex"`
	Email       string `gorm:"uniqueIndex"`
	DisplayName string
	Password    string
	Memos       []Memo `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// Validate checks all user's fields to ensure they are in the required format
func (u User) Validate(minPasswordLength int) map[string]string {
	errs := map[string]string{}

	if u.Username == "" {
		errs["username"] = "Username cannot be empty"
	}

	if len(u.Username) > 20 {
		errs["username"] = "Username cannot be longer than 20 characters"
	}

	if match, _ := regexp.Match(UsernamePattern, []byte(u.Username)); u.Username != "" && !match {
		errs["username"] = "Username can only have letters, numbers, _, - and ."
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		errs["email"] = "Incorrect email address"
	}

	if len(u.Email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
	}

	if u.DisplayName == "" {
		errs["displayname"] = "Display name cannot be empty"
	}

	if len(u.DisplayName) > 50 {
		errs["displayname"] = "Display name cannot be longer than 50 characters"
	}

	if len(u.Password) < minPasswordLength {
		errs["password"] = fmt.Sprintf("Password must be at least %d characters long", minPasswordLength)
	}

	if len(u.Password) > 50 {
		errs["password"] = "Password cannot be longer than 50 characters"
	}

	return errs
}

func Hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return fmt.Sprintf("%x", h.Sum(nil))
}
