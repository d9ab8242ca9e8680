package models

import (
	"errors"
	"strings"
	"time"
)

type Staff struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Pin        int       `json:"pin"`
	Fob        *int      `json:"fob,omitempty"`
	Active     bool      `json:"active"`
	Created    time.Time `json:"created"`
}

// NewStaff is the body for creating and updating staff. The backend
// generates the PIN.
type NewStaff struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Fob        *int   `json:"fob"`
}

func (s NewStaff) Validate() error {
	if s.CustomerID <= 0 {
		return errors.New("Staff must belong to a customer")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("Staff requires a name")
	}
	if strings.TrimSpace(s.Phone) == "" {
		return errors.New("Staff requires a phone number")
	}
	if s.Fob != nil && *s.Fob <= 0 {
		return errors.New("Fob must be a positive number")
	}
	return nil
}
