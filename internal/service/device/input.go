package device

import (
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const (
	maxIDLen    = 128
	maxFieldLen = 64
	maxTokenLen = 4096
)

func validateID(id string) []domain.FieldError {
	id = strings.TrimSpace(id)
	if id == "" {
		return []domain.FieldError{{Field: "id", Message: "required"}}
	}
	if len(id) > maxIDLen {
		return []domain.FieldError{{Field: "id", Message: "max 128 characters"}}
	}
	return nil
}

func validateFields(fields map[string]string) []domain.FieldError {
	var errs []domain.FieldError
	for _, name := range []string{"device_type", "os_version", "app_version", "language"} {
		if len(strings.TrimSpace(fields[name])) > maxFieldLen {
			errs = append(errs, domain.FieldError{Field: name, Message: "max 64 characters"})
		}
	}
	return errs
}

// RegisterInput describes a device announcing itself.
type RegisterInput struct {
	ID         string
	DeviceType string
	OSVersion  string
	AppVersion string
	Language   string
	PushToken  *string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateID(i.ID)...)
	errs = append(errs, validateFields(map[string]string{
		"device_type": i.DeviceType, "os_version": i.OSVersion,
		"app_version": i.AppVersion, "language": i.Language,
	})...)
	if i.PushToken != nil && len(*i.PushToken) > maxTokenLen {
		errs = append(errs, domain.FieldError{Field: "push_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput changes the non-empty fields of a registered device.
type UpdateInput struct {
	ID         string
	DeviceType string
	OSVersion  string
	AppVersion string
	Language   string
	PushToken  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateID(i.ID)...)
	if strings.TrimSpace(i.DeviceType) == "" && strings.TrimSpace(i.OSVersion) == "" &&
		strings.TrimSpace(i.AppVersion) == "" && strings.TrimSpace(i.Language) == "" && i.PushToken == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	errs = append(errs, validateFields(map[string]string{
		"device_type": i.DeviceType, "os_version": i.OSVersion,
		"app_version": i.AppVersion, "language": i.Language,
	})...)
	if i.PushToken != nil && len(*i.PushToken) > maxTokenLen {
		errs = append(errs, domain.FieldError{Field: "push_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
