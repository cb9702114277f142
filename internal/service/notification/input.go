package notification

import (
	"sort"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const maxPhoneDigits = 15

// SettingInput is the desired routing of one category.
type SettingInput struct {
	Phone  string
	Linked bool
}

// UpdateSettingsInput holds the categories to overwrite.
type UpdateSettingsInput struct {
	Categories map[domain.ReportCategory]SettingInput
}

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Categories) == 0 {
		errs = append(errs, domain.FieldError{Field: "categories", Message: "at least one category must be provided"})
	}

	keys := make([]string, 0, len(i.Categories))
	for c := range i.Categories {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)

	for _, k := range keys {
		c := domain.ReportCategory(k)
		field := "categories." + k
		if !c.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown category"})
			continue
		}
		digits := normalizePhone(i.Categories[c].Phone)
		if len(digits) > maxPhoneDigits {
			errs = append(errs, domain.FieldError{Field: field + ".phone", Message: "max 15 digits"})
		}
		if i.Categories[c].Linked && digits == "" {
			errs = append(errs, domain.FieldError{Field: field + ".phone", Message: "required when linked"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
