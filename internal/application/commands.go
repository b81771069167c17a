package application

import (
	"errors"
	"net/mail"
	"strings"
)

type LoginCommand struct {
	Profile   string
	ServerURL string
	Email     string
	Password  string
}

func (c LoginCommand) Validate() error {
	if strings.TrimSpace(c.Profile) == "" {
		return errors.New("profile name is required")
	}
	if strings.TrimSpace(c.ServerURL) == "" {
		return errors.New("server url is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errors.New("a valid email is required")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

func (c RegisterCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errors.New("a valid email is required")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}

	return nil
}
