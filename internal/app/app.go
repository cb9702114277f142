package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/adapter/cache"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/admin"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/device"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/notifysetting"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/provider/opencage"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/provider/whatsapp"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/storage/blob"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/storage/local"
	authpkg "github.com/heartmarshall/fieldreports-backend/internal/auth"
	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
	"github.com/heartmarshall/fieldreports-backend/internal/service/address"
	authsvc "github.com/heartmarshall/fieldreports-backend/internal/service/auth"
	devicesvc "github.com/heartmarshall/fieldreports-backend/internal/service/device"
	"github.com/heartmarshall/fieldreports-backend/internal/service/media"
	"github.com/heartmarshall/fieldreports-backend/internal/service/notification"
	"github.com/heartmarshall/fieldreports-backend/internal/service/report"
	"github.com/heartmarshall/fieldreports-backend/internal/service/stats"
	"github.com/heartmarshall/fieldreports-backend/internal/transport/middleware"
	"github.com/heartmarshall/fieldreports-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects the
// stores, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("report_store", cfg.Reports.Store),
		slog.String("media_driver", cfg.Media.Driver),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	backend, err := openReportBackend(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Adapters.
	pgTx := postgres.NewTxManager(pool)
	adminRepo := admin.New(pool)
	deviceRepo := device.New(pool)
	settingsRepo := notifysetting.New(pool)
	geocoder := opencage.NewProvider(cfg.Geocode.BaseURL, cfg.Geocode.APIKey, cfg.Geocode.Timeout, logger)
	messenger := whatsapp.NewClient(cfg.WhatsApp, logger)

	var (
		store      mediaStore
		mediaFiles http.Handler
	)
	switch cfg.Media.Driver {
	case config.MediaLocal:
		ls := local.NewStore(cfg.Media.LocalDir, cfg.Media.PublicBaseURL, logger)
		store, mediaFiles = ls, ls.Handler()
	default:
		store = blob.NewStore(cfg.Media, logger)
	}

	// Services.
	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, adminRepo, jwt)
	resolver := address.NewResolver(logger, geocoder, cache.NewAddressCache(), cfg.Geocode.Enabled(), m)
	mediaService := media.NewService(logger, store, int64(cfg.Media.MaxImageBytes))
	notifyService := notification.NewService(logger, settingsRepo, messenger, pgTx, m)
	reportService := report.NewService(logger, backend.store, resolver, mediaService, notifyService, backend.tx, report.Config{
		PageSize:          cfg.Reports.PageSize,
		MaxPageSize:       cfg.Reports.MaxPageSize,
		GeocodeLanguage:   cfg.Reports.GeocodeLanguage,
		ProcessingMessage: cfg.Reports.ProcessingMessage,
	}, m)
	statsService := stats.NewService(logger, backend.store)
	deviceService := devicesvc.NewService(logger, deviceRepo, backend.store)

	// HTTP.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.TrustProxy)

	handlers := rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Reports:  rest.NewReportHandler(reportService, logger),
		Stats:    rest.NewStatsHandler(statsService, logger),
		Settings: rest.NewSettingsHandler(notifyService, logger),
		Devices:  rest.NewDeviceHandler(deviceService, logger),
		Health:   rest.NewHealthHandler(backend.pingers, Version),
		Media:    mediaFiles,
	}
	if m != nil {
		handlers.Metrics = m.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	router := rest.NewRouter(handlers, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CORS(cfg.CORS),
			middleware.Logger(logger),
			middleware.Auth(authService),
			middleware.Metrics(m),
		},
		IntakeLimit:  limiter.Limit(cfg.RateLimit.IntakePerMinute),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

type mediaStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
