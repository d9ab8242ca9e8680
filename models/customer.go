package models

import (
	"errors"
	"net/mail"
	"strings"
)

type Customer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
	Notes  string `json:"notes,omitempty"`
}

type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes,omitempty"`
}

type CustomerStatus struct {
	Active bool `json:"active"`
}

// CustomerFilter narrows a customer listing. A nil Active lists everyone.
type CustomerFilter struct {
	Active *bool
}

func (c NewCustomer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("Customer requires a name")
	}
	return validateEmail(c.Email)
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("Email is not a valid address")
	}
	return nil
}
