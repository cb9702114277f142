package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if err := c.Reports.validate(); err != nil {
		return fmt.Errorf("reports: %w", err)
	}

	if c.Reports.Store == StoreMongo && strings.TrimSpace(c.Mongo.URI) == "" {
		return fmt.Errorf("mongo.uri is required when reports.store is %q", StoreMongo)
	}

	if err := c.Media.validate(); err != nil {
		return fmt.Errorf("media: %w", err)
	}

	if c.RateLimit.IntakePerMinute <= 0 {
		return fmt.Errorf("rate_limit.intake_per_minute must be > 0 (got %d)", c.RateLimit.IntakePerMinute)
	}

	if err := c.Digest.validate(); err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	return nil
}

func (r *ReportsConfig) validate() error {
	switch r.Store {
	case StorePostgres, StoreMongo:
	default:
		return fmt.Errorf("store must be %q or %q (got %q)", StorePostgres, StoreMongo, r.Store)
	}
	if r.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", r.MaxPageSize)
	}
	if r.PageSize <= 0 || r.PageSize > r.MaxPageSize {
		return fmt.Errorf("page_size must be in [1, %d] (got %d)", r.MaxPageSize, r.PageSize)
	}
	if strings.TrimSpace(r.ProcessingMessage) == "" {
		return fmt.Errorf("processing_message must not be empty")
	}
	return nil
}

func (m *MediaConfig) validate() error {
	switch m.Driver {
	case MediaBlob, MediaLocal:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", MediaBlob, MediaLocal, m.Driver)
	}
	if m.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be > 0 (got %d)", m.MaxImageBytes)
	}
	if m.Driver == MediaLocal && strings.TrimSpace(m.LocalDir) == "" {
		return fmt.Errorf("local_dir is required for the local driver")
	}
	return nil
}

func (d *DigestConfig) validate() error {
	if _, err := cron.ParseStandard(d.Cron); err != nil {
		return fmt.Errorf("cron %q: %w", d.Cron, err)
	}
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", d.Timezone, err)
	}
	if d.TopCategories < 0 {
		return fmt.Errorf("top_categories must be >= 0 (got %d)", d.TopCategories)
	}
	return nil
}
