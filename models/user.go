package models

import (
	"errors"
	"strings"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u NewUser) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("User requires a name")
	}
	return validateEmail(u.Email)
}
