package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account allowed to triage reports.
type Admin struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         AdminRole
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the already-authenticated caller attached to a request.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  AdminRole
}

// IsAdmin reports whether the identity carries an administrator role.
func (i Identity) IsAdmin() bool { return i.Role.IsValid() }

// Device is a registered mobile client. Its ID doubles as the author id on
// reports submitted from that device.
type Device struct {
	ID         string
	DeviceType string
	OSVersion  string
	AppVersion string
	Language   string
	PushToken  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DeviceWithReports is a device together with the number of reports it authored.
type DeviceWithReports struct {
	Device
	Reports int
}

// CategorySetting routes processing notifications for one category.
type CategorySetting struct {
	Category  ReportCategory
	Phone     string
	Linked    bool
	UpdatedAt time.Time
}

// DefaultCategorySetting is the lazily created empty setting.
func DefaultCategorySetting(c ReportCategory) CategorySetting {
	return CategorySetting{Category: c}
}
