package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/service/device"
)

type deviceService interface {
	Register(ctx context.Context, input device.RegisterInput) (*domain.Device, error)
	Update(ctx context.Context, input device.UpdateInput) (*domain.Device, error)
	Get(ctx context.Context, id string) (*domain.DeviceWithReports, error)
	List(ctx context.Context, page, limit int) (*device.Page, error)
}

// DeviceHandler serves the mobile client registry.
type DeviceHandler struct {
	svc deviceService
	log *slog.Logger
}

// NewDeviceHandler creates a DeviceHandler.
func NewDeviceHandler(svc deviceService, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{svc: svc, log: logger.With("handler", "device")}
}

type deviceRequest struct {
	DeviceType string  `json:"deviceType"`
	OSVersion  string  `json:"osVersion"`
	AppVersion string  `json:"appVersion"`
	Language   string  `json:"language"`
	PushToken  *string `json:"pushToken"`
}

type devicePageResponse struct {
	Data  []deviceResponse `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// Register handles POST /api/devices/{id}.
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Register(r.Context(), device.RegisterInput{
		ID:         r.PathValue("id"),
		DeviceType: req.DeviceType,
		OSVersion:  req.OSVersion,
		AppVersion: req.AppVersion,
		Language:   req.Language,
		PushToken:  req.PushToken,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeviceResponse(d))
}

// Update handles PUT /api/devices/{id}.
func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req deviceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Update(r.Context(), device.UpdateInput{
		ID:         r.PathValue("id"),
		DeviceType: req.DeviceType,
		OSVersion:  req.OSVersion,
		AppVersion: req.AppVersion,
		Language:   req.Language,
		PushToken:  req.PushToken,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeviceResponse(d))
}

// Get handles GET /api/devices/{id}.
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeviceWithReportsResponse(d))
}

// List handles GET /api/devices?page=&limit=.
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	var page, limit int
	var errs []domain.FieldError
	if !queryInt(r, "page", &page) {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
	}
	if !queryInt(r, "limit", &limit) {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	p, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := devicePageResponse{
		Data:  make([]deviceResponse, len(p.Items)),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
	for i := range p.Items {
		resp.Data[i] = toDeviceWithReportsResponse(&p.Items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}
