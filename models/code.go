package models

import (
	"errors"
	"fmt"
	"strings"
)

type CodeType string

const (
	PinCode CodeType = "pin"
	FobCode CodeType = "fob"
)

// Code is an access code owned by a user. The code itself is its key.
type Code struct {
	Code     string   `json:"code"`
	UserID   int64    `json:"userId"`
	CodeType CodeType `json:"codeType"`
}

func (c Code) Validate() error {
	if c.UserID <= 0 {
		return errors.New("Code must belong to a user")
	}
	if err := ValidateCodeValue(c.Code); err != nil {
		return err
	}
	switch c.CodeType {
	case PinCode, FobCode:
		return nil
	default:
		return fmt.Errorf("Unknown code type %q", c.CodeType)
	}
}

func ValidateCodeValue(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("Code is required")
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errors.New("Code must contain only digits")
		}
	}
	return nil
}
