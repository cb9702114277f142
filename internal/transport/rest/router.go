package rest

import (
	"net/http"

	"github.com/heartmarshall/fieldreports-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts. Metrics and Media are
// optional.
type Handlers struct {
	Auth     *AuthHandler
	Reports  *ReportHandler
	Stats    *StatsHandler
	Settings *SettingsHandler
	Devices  *DeviceHandler
	Health   *HealthHandler

	Metrics     http.Handler
	MetricsPath string
	Media       http.Handler
}

// RouterConfig holds the cross-cutting pieces of the HTTP stack.
type RouterConfig struct {
	Global       []middleware.Middleware
	IntakeLimit  middleware.Middleware
	MaxBodyBytes int64
}

// NewRouter registers every route on a ServeMux and wraps it in the global
// middleware chain.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	admin := func(f http.HandlerFunc) http.Handler { return middleware.RequireAdmin(f) }
	limited := func(f http.HandlerFunc) http.Handler {
		if cfg.IntakeLimit == nil {
			return f
		}
		return cfg.IntakeLimit(f)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/admin/login", h.Auth.Login)
	mux.Handle("GET /api/admin/me", admin(h.Auth.Me))

	mux.Handle("POST /api/reports", limited(h.Reports.Create))
	mux.Handle("GET /api/reports", admin(h.Reports.List))
	mux.Handle("GET /api/reports/geojson", admin(h.Reports.GeoJSON))
	mux.Handle("GET /api/reports/{id}", admin(h.Reports.Get))
	mux.Handle("PATCH /api/reports/{id}", admin(h.Reports.Update))
	mux.Handle("PUT /api/reports/{id}/status", admin(h.Reports.Transition))
	mux.Handle("DELETE /api/reports/{id}", admin(h.Reports.Delete))

	mux.Handle("GET /api/stats", admin(h.Stats.Dashboard))
	mux.Handle("GET /api/stats/charts", admin(h.Stats.Charts))

	mux.Handle("GET /api/settings/whatsapp", admin(h.Settings.Get))
	mux.Handle("PATCH /api/settings/whatsapp", admin(h.Settings.Update))

	mux.Handle("POST /api/devices/{id}", limited(h.Devices.Register))
	mux.Handle("PUT /api/devices/{id}", limited(h.Devices.Update))
	mux.Handle("GET /api/devices", admin(h.Devices.List))
	mux.Handle("GET /api/devices/{id}", admin(h.Devices.Get))

	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, h.Metrics)
	}
	if h.Media != nil {
		mux.Handle("GET /media/", http.StripPrefix("/media", h.Media))
	}

	// MaxBytesHandler copies the request, so it stays outside the chain
	// to keep the route pattern visible to the metrics middleware.
	root := middleware.Chain(cfg.Global...)(mux)
	if cfg.MaxBodyBytes > 0 {
		root = http.MaxBytesHandler(root, cfg.MaxBodyBytes)
	}
	return root
}
