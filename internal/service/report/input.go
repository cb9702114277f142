package report

import (
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxContentLen = 10000
	maxNameLen    = 200
	maxTags       = 20
	maxTagLen     = 50
	maxImages     = 10
	maxReasonLen  = 1000
	maxSearchLen  = 200
)

// LocationInput carries caller-supplied coordinates. Latitude and Longitude
// must be set together.
type LocationInput struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

func (l *LocationInput) validate(field string) []domain.FieldError {
	if l == nil {
		return nil
	}
	if l.Latitude == nil || l.Longitude == nil {
		return []domain.FieldError{{Field: field, Message: "latitude and longitude are required together"}}
	}
	loc := domain.Location{Latitude: *l.Latitude, Longitude: *l.Longitude}
	if !loc.Valid() {
		return []domain.FieldError{{Field: field, Message: "coordinates out of range"}}
	}
	return nil
}

func (l *LocationInput) toDomain() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{
		Latitude:  *l.Latitude,
		Longitude: *l.Longitude,
		Address:   strings.TrimSpace(l.Address),
	}
}

// ImageInput is an attached photo. Data is an inline data URL to upload;
// items without Data keep only LocalURL.
type ImageInput struct {
	LocalURL string
	Data     string
	Filename string
}

func validateImages(images []ImageInput) []domain.FieldError {
	var errs []domain.FieldError
	if len(images) > maxImages {
		errs = append(errs, domain.FieldError{Field: "images", Message: "max 10 images"})
	}
	for _, img := range images {
		if strings.TrimSpace(img.LocalURL) == "" && strings.TrimSpace(img.Data) == "" {
			errs = append(errs, domain.FieldError{Field: "images", Message: "each image needs a localUrl or data"})
			break
		}
	}
	return errs
}

func validateTags(tags []string) []domain.FieldError {
	if len(tags) > maxTags {
		return []domain.FieldError{{Field: "tags", Message: "max 20 tags"}}
	}
	for _, t := range tags {
		if len(strings.TrimSpace(t)) > maxTagLen {
			return []domain.FieldError{{Field: "tags", Message: "max 50 characters per tag"}}
		}
	}
	return nil
}

func validateLen(field string, s *string, limit int) []domain.FieldError {
	if s != nil && len(strings.TrimSpace(*s)) > limit {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

// CreateInput holds a public intake submission. There is no status field:
// new reports always start pending.
type CreateInput struct {
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	Category   domain.ReportCategory
	Priority   domain.ReportPriority
	Tags       []string
	Images     []ImageInput
	Location   *LocationInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}

	errs = append(errs, validateLen("title", &i.Title, maxTitleLen)...)
	errs = append(errs, validateLen("content", &i.Content, maxContentLen)...)
	errs = append(errs, validateLen("authorName", &i.AuthorName, maxNameLen)...)
	errs = append(errs, validateLen("authorId", &i.AuthorID, maxNameLen)...)
	errs = append(errs, validateTags(i.Tags)...)
	errs = append(errs, validateImages(i.Images)...)
	errs = append(errs, i.Location.validate("location")...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransitionInput moves a report to Status.
type TransitionInput struct {
	ID              string
	Status          domain.ReportStatus
	RejectionReason string
	Location        *LocationInput
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(i.RejectionReason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "rejectionReason", Message: "max 1000 characters"})
	}
	errs = append(errs, i.Location.validate("location")...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContentInput edits non-status fields. Nil fields are left unchanged.
type UpdateContentInput struct {
	ID       string
	Title    *string
	Content  *string
	Category *domain.ReportCategory
	Priority *domain.ReportPriority
	Tags     *[]string
	Images   *[]ImageInput
	Location *LocationInput
}

// Validate checks all fields and collects all errors.
func (i UpdateContentInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.Category == nil && i.Priority == nil &&
		i.Tags == nil && i.Images == nil && i.Location == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	errs = append(errs, validateLen("title", i.Title, maxTitleLen)...)
	errs = append(errs, validateLen("content", i.Content, maxContentLen)...)
	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags)...)
	}
	if i.Images != nil {
		errs = append(errs, validateImages(*i.Images)...)
	}
	errs = append(errs, i.Location.validate("location")...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filter, sort and page parameters for List.
type ListInput struct {
	Search      string
	Status      *domain.ReportStatus
	Priority    *domain.ReportPriority
	Category    *domain.ReportCategory
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	HasLocation *bool

	SortBy    domain.ReportSortField
	SortOrder domain.SortOrder

	// Page is 1-indexed; zero means the first page.
	Page int
	// Limit zero means the configured page size.
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Search) > maxSearchLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.CreatedFrom != nil && i.CreatedTo != nil && i.CreatedFrom.After(*i.CreatedTo) {
		errs = append(errs, domain.FieldError{Field: "createdFrom", Message: "must not be after createdTo"})
	}
	if i.SortBy != "" && !i.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "invalid value"})
	}
	if i.SortOrder != "" && !i.SortOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be asc or desc"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
