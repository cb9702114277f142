package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/service/notification"
)

type settingsService interface {
	Settings(ctx context.Context) ([]domain.CategorySetting, error)
	UpdateSettings(ctx context.Context, input notification.UpdateSettingsInput) ([]domain.CategorySetting, error)
}

// SettingsHandler serves notification routing settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type categorySettingJSON struct {
	Phone  string `json:"phone"`
	Linked bool   `json:"linked"`
}

type whatsappSettingsJSON struct {
	Categories map[string]categorySettingJSON `json:"categories"`
}

func toWhatsappSettings(settings []domain.CategorySetting) whatsappSettingsJSON {
	resp := whatsappSettingsJSON{Categories: make(map[string]categorySettingJSON, len(settings))}
	for _, s := range settings {
		resp.Categories[s.Category.String()] = categorySettingJSON{Phone: s.Phone, Linked: s.Linked}
	}
	return resp
}

// Get handles GET /api/settings/whatsapp.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWhatsappSettings(settings))
}

// Update handles PATCH /api/settings/whatsapp.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req whatsappSettingsJSON
	if !decodeJSON(w, r, &req) {
		return
	}

	input := notification.UpdateSettingsInput{
		Categories: make(map[domain.ReportCategory]notification.SettingInput, len(req.Categories)),
	}
	for cat, s := range req.Categories {
		input.Categories[domain.ReportCategory(cat)] = notification.SettingInput{Phone: s.Phone, Linked: s.Linked}
	}

	settings, err := h.svc.UpdateSettings(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWhatsappSettings(settings))
}
