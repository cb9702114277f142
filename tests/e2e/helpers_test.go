//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fieldreports-backend/internal/adapter/cache"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/admin"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/device"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/notifysetting"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/provider/opencage"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/provider/whatsapp"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/storage/local"
	authpkg "github.com/heartmarshall/fieldreports-backend/internal/auth"
	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
	"github.com/heartmarshall/fieldreports-backend/internal/service/address"
	authsvc "github.com/heartmarshall/fieldreports-backend/internal/service/auth"
	devicesvc "github.com/heartmarshall/fieldreports-backend/internal/service/device"
	"github.com/heartmarshall/fieldreports-backend/internal/service/media"
	"github.com/heartmarshall/fieldreports-backend/internal/service/notification"
	reportsvc "github.com/heartmarshall/fieldreports-backend/internal/service/report"
	"github.com/heartmarshall/fieldreports-backend/internal/service/stats"
	"github.com/heartmarshall/fieldreports-backend/internal/transport/middleware"
	"github.com/heartmarshall/fieldreports-backend/internal/transport/rest"
)

// onePixelPNG is a valid 1x1 PNG used for image uploads.
const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

const (
	adminPassword = "correct-horse-battery"
	intakeLimit   = 1000
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Auth     *authsvc.Service
	WhatsApp *fakeWhatsApp
	jwt      *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeWhatsApp records outgoing messages sent to the Cloud API.
type fakeWhatsApp struct {
	mu   sync.Mutex
	sent []whatsAppMessage
}

type whatsAppMessage struct {
	To   string
	Body string
}

func (f *fakeWhatsApp) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To   string `json:"to"`
		Text struct {
			Body string `json:"body"`
		} `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.sent = append(f.sent, whatsAppMessage{To: req.To, Body: req.Text.Body})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"messages":[{"id":"wamid.test"}]}`)
}

func (f *fakeWhatsApp) Messages() []whatsAppMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]whatsAppMessage(nil), f.sent...)
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	m := metrics.New()

	// 3. Repositories.
	adminRepo := admin.New(pool)
	deviceRepo := device.New(pool)
	settingsRepo := notifysetting.New(pool)
	reportRepo := report.New(pool)

	// 4. External providers. Geocoding stays disabled; WhatsApp talks to a fake.
	wa := &fakeWhatsApp{}
	waSrv := httptest.NewServer(wa)
	t.Cleanup(waSrv.Close)

	geocoder := opencage.NewProvider("http://127.0.0.1:1", "", time.Second, logger)
	messenger := whatsapp.NewClient(config.WhatsAppConfig{
		BaseURL:       waSrv.URL,
		AccessToken:   "test-token",
		PhoneNumberID: "1000",
		Timeout:       5 * time.Second,
	}, logger)

	// The media public URL depends on the server address, so the handler is
	// installed after the listener exists.
	var root http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		root.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	store := local.NewStore(t.TempDir(), srv.URL+"/media", logger)

	// 5. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 6. Services.
	authService := authsvc.NewService(logger, adminRepo, jwtMgr)
	resolver := address.NewResolver(logger, geocoder, cache.NewAddressCache(), false, m)
	mediaService := media.NewService(logger, store, 1<<20)
	notifyService := notification.NewService(logger, settingsRepo, messenger, txm, m)
	reportService := reportsvc.NewService(logger, reportRepo, resolver, mediaService, notifyService, txm, reportsvc.Config{
		PageSize:          10,
		MaxPageSize:       100,
		GeocodeLanguage:   "en",
		ProcessingMessage: "You have a new report to process.",
	}, m)
	statsService := stats.NewService(logger, reportRepo)
	deviceService := devicesvc.NewService(logger, deviceRepo, reportRepo)

	// 7. Router with the production middleware chain.
	limiter := middleware.NewRateLimiter(time.Minute, false)

	root = rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Reports:     rest.NewReportHandler(reportService, logger),
		Stats:       rest.NewStatsHandler(statsService, logger),
		Settings:    rest.NewSettingsHandler(notifyService, logger),
		Devices:     rest.NewDeviceHandler(deviceService, logger),
		Health:      rest.NewHealthHandler(map[string]rest.Pinger{"postgres": pool}, "test-version"),
		Metrics:     m.Handler(),
		MetricsPath: "/metrics",
		Media:       store.Handler(),
	}, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins:   "*",
				AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
				AllowedHeaders:   "Authorization,Content-Type",
				AllowCredentials: true,
				MaxAge:           86400,
			}),
			middleware.Logger(logger),
			middleware.Auth(authService),
			middleware.Metrics(m),
		},
		IntakeLimit:  limiter.Limit(intakeLimit),
		MaxBodyBytes: 4 << 20,
	})

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Auth:     authService,
		WhatsApp: wa,
		jwt:      jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request and decodes the JSON response into a map. It
// returns the status code alongside.
func doJSON(t *testing.T, ts *testServer, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// createAdmin bootstraps an admin with adminPassword through the auth
// service.
func createAdmin(t *testing.T, ts *testServer) *domain.Admin {
	t.Helper()

	suffix := uuid.New().String()[:8]
	a, created, err := ts.Auth.Bootstrap(context.Background(), authsvc.BootstrapInput{
		Email:    "e2e-" + suffix + "@example.com",
		Name:     "E2E " + suffix,
		Password: adminPassword,
	})
	require.NoError(t, err)
	require.True(t, created)
	return a
}

// adminToken returns a signed token for a fresh admin.
func adminToken(t *testing.T, ts *testServer) string {
	t.Helper()

	a := testhelper.SeedAdmin(t, ts.Pool)
	tok, _, err := ts.jwt.GenerateAccessToken(&a)
	require.NoError(t, err)
	return tok
}

// submitReport posts a public report and returns the decoded body.
func submitReport(t *testing.T, ts *testServer, body map[string]any) map[string]any {
	t.Helper()

	status, out := doJSON(t, ts, http.MethodPost, "/api/reports", "", body)
	require.Equal(t, http.StatusCreated, status, "body: %v", out)
	return out
}
