package model

import (
	"errors"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) FindByID(id string) (*User, error) {
	return u.findBy("id = ?", id)
}

func (u *UserRepository) FindByUsername(username string) (*User, error) {
	return u.findBy("username = ?", username)
}

func (u *UserRepository) FindByEmail(email string) (*User, error) {
	return u.findBy("email = ?", email)
}

func (u *UserRepository) findBy(query string, value string) (*User, error) {
	var user User

	result := u.DB.Where(query, value).Take(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return &user, result.Error
}

func (u *UserRepository) Create(user *User) error {
	return u.DB.Create(user).Error
}

func (u *UserRepository) Total() int64 {
	var total int64
	u.DB.Table("users").Count(&total)
	return total
}
