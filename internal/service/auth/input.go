package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt limit
	maxEmailLen    = 254
)

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLen {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}

func validatePassword(password string) []domain.FieldError {
	if password == "" {
		return []domain.FieldError{{Field: "password", Message: "required"}}
	}
	if len(password) < minPasswordLen {
		return []domain.FieldError{{Field: "password", Message: "min 6 characters"}}
	}
	if len(password) > maxPasswordLen {
		return []domain.FieldError{{Field: "password", Message: "max 72 bytes"}}
	}
	return nil
}

// LoginInput holds admin credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePassword(i.Password)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BootstrapInput describes the initial super admin.
type BootstrapInput struct {
	Email    string
	Name     string
	Password string
}

// Validate validates the bootstrap input.
func (i BootstrapInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePassword(i.Password)...)
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
