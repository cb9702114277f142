package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Reports   ReportsConfig   `yaml:"reports"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Auth      AuthConfig      `yaml:"auth"`
	Geocode   GeocodeConfig   `yaml:"geocode"`
	Media     MediaConfig     `yaml:"media"`
	WhatsApp  WhatsAppConfig  `yaml:"whatsapp"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Digest    DigestConfig    `yaml:"digest"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes bounds request bodies; intake carries inline images.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"33554432"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Report store drivers.
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

// ReportsConfig holds report lifecycle settings.
type ReportsConfig struct {
	// Store selects the report repository backend: postgres or mongo.
	Store           string `yaml:"store"            env:"REPORTS_STORE"            env-default:"postgres"`
	PageSize        int    `yaml:"page_size"        env:"REPORTS_PAGE_SIZE"        env-default:"10"`
	MaxPageSize     int    `yaml:"max_page_size"    env:"REPORTS_MAX_PAGE_SIZE"    env-default:"100"`
	GeocodeLanguage string `yaml:"geocode_language" env:"REPORTS_GEOCODE_LANGUAGE" env-default:"en"`
	// ProcessingMessage is sent to the category contact when a report
	// moves to processing.
	ProcessingMessage string `yaml:"processing_message" env:"REPORTS_PROCESSING_MESSAGE" env-default:"You have a new report to process."`
}

// MongoConfig holds MongoDB settings used when reports.store is mongo.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"fieldreports"`
	Collection     string        `yaml:"collection"      env:"MONGO_COLLECTION"      env-default:"reports"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

// AuthConfig holds admin token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"fieldreports"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// GeocodeConfig holds reverse-geocoding provider settings.
// An empty APIKey disables lookups.
type GeocodeConfig struct {
	BaseURL string        `yaml:"base_url" env:"GEOCODE_BASE_URL" env-default:"https://www.gps-coordinates.net/geoproxy"`
	APIKey  string        `yaml:"api_key"  env:"GEOCODE_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"GEOCODE_TIMEOUT"  env-default:"5s"`
}

// Enabled reports whether lookups may reach the provider.
func (c GeocodeConfig) Enabled() bool { return strings.TrimSpace(c.APIKey) != "" }

// Media storage drivers.
const (
	MediaBlob  = "blob"
	MediaLocal = "local"
)

// MediaConfig holds object storage settings for report images.
type MediaConfig struct {
	Driver        string        `yaml:"driver"          env:"MEDIA_DRIVER"          env-default:"blob"`
	BlobBaseURL   string        `yaml:"blob_base_url"   env:"MEDIA_BLOB_BASE_URL"   env-default:"https://blob.vercel-storage.com"`
	BlobToken     string        `yaml:"blob_token"      env:"MEDIA_BLOB_TOKEN"`
	LocalDir      string        `yaml:"local_dir"       env:"MEDIA_LOCAL_DIR"       env-default:"./data/media"`
	PublicBaseURL string        `yaml:"public_base_url" env:"MEDIA_PUBLIC_BASE_URL" env-default:"http://localhost:8080/media"`
	MaxImageBytes int           `yaml:"max_image_bytes" env:"MEDIA_MAX_IMAGE_BYTES" env-default:"10485760"`
	Timeout       time.Duration `yaml:"timeout"         env:"MEDIA_TIMEOUT"         env-default:"15s"`
}

// WhatsAppConfig holds Graph API settings for processing notifications.
type WhatsAppConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"WHATSAPP_BASE_URL"        env-default:"https://graph.facebook.com/v22.0"`
	AccessToken   string        `yaml:"access_token"    env:"WHATSAPP_ACCESS_TOKEN"`
	PhoneNumberID string        `yaml:"phone_number_id" env:"WHATSAPP_PHONE_NUMBER_ID"`
	Timeout       time.Duration `yaml:"timeout"         env:"WHATSAPP_TIMEOUT"         env-default:"5s"`
}

// TelegramConfig holds the bot used for the statistics digest.
type TelegramConfig struct {
	BotToken string        `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID   int64         `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"`
	Timeout  time.Duration `yaml:"timeout"   env:"TELEGRAM_TIMEOUT"   env-default:"10s"`
}

// DigestConfig controls the scheduled statistics digest.
type DigestConfig struct {
	Cron     string `yaml:"cron"     env:"DIGEST_CRON"     env-default:"0 8 * * *"`
	Timezone string `yaml:"timezone" env:"DIGEST_TIMEZONE" env-default:"UTC"`
	// TopCategories limits the category lines in the message.
	TopCategories int `yaml:"top_categories" env:"DIGEST_TOP_CATEGORIES" env-default:"5"`
}

// RateLimitConfig bounds anonymous intake traffic.
type RateLimitConfig struct {
	IntakePerMinute int           `yaml:"intake_per_minute" env:"RATE_LIMIT_INTAKE_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
	TrustProxy      bool          `yaml:"trust_proxy"       env:"RATE_LIMIT_TRUST_PROXY"       env-default:"false"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// LogConfig holds logging settings. File enables a rotating log file in
// addition to stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
}
