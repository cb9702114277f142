package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAdmin inserts an active admin with a placeholder password hash.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Admin {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	admin := domain.Admin{
		ID:           uuid.New(),
		Email:        "admin-" + suffix + "@example.com",
		Name:         "Admin " + suffix,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderpla",
		Role:         domain.AdminRoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO admins (id, email, name, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		admin.ID, admin.Email, admin.Name, admin.PasswordHash, string(admin.Role), admin.IsActive, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}
	return admin
}

// SeedDevice inserts a registered device.
func SeedDevice(t *testing.T, pool *pgxpool.Pool) domain.Device {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	device := domain.Device{
		ID:         "device-" + uniqueSuffix(),
		DeviceType: "android",
		OSVersion:  "14",
		AppVersion: "1.0.0",
		Language:   "en",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO devices (id, device_type, os_version, app_version, language, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		device.ID, device.DeviceType, device.OSVersion, device.AppVersion, device.Language, device.CreatedAt, device.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDevice: %v", err)
	}
	return device
}

// SeedReport inserts a pending report. Options mutate the report before the
// insert, so raw values such as legacy statuses can be stored as-is.
func SeedReport(t *testing.T, pool *pgxpool.Pool, opts ...func(*domain.Report)) domain.Report {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Report{
		ID:         uuid.NewString(),
		Title:      "Pothole " + suffix,
		Content:    "Deep pothole near the crossing " + suffix,
		AuthorID:   "device-" + suffix,
		AuthorName: "Citizen " + suffix,
		Category:   domain.CategoryRoad,
		Priority:   domain.PriorityMedium,
		Status:     domain.ReportStatusPending,
		Tags:       []string{},
		Images:     []domain.Image{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(&r)
	}

	type image struct {
		LocalURL  string `json:"localUrl"`
		PublicURL string `json:"publicUrl,omitempty"`
	}
	images := make([]image, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, image{LocalURL: img.LocalURL, PublicURL: img.PublicURL})
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		t.Fatalf("testhelper: SeedReport marshal images: %v", err)
	}

	var lat, lng *float64
	var address *string
	if r.Location != nil {
		lat, lng = &r.Location.Latitude, &r.Location.Longitude
		if r.Location.HasAddress() {
			address = &r.Location.Address
		}
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO reports (id, title, content, author_id, author_name, category, priority, status,
		                      tags, images, latitude, longitude, address,
		                      reviewed_by, reviewed_at, rejection_reason, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		r.ID, r.Title, r.Content, r.AuthorID, r.AuthorName, string(r.Category), string(r.Priority), string(r.Status),
		r.Tags, imagesJSON, lat, lng, address,
		r.ReviewedBy, r.ReviewedAt, r.RejectionReason, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport: %v", err)
	}
	return r
}
