package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/service/report"
)

type reportService interface {
	Create(ctx context.Context, input report.CreateInput) (*domain.Report, error)
	Transition(ctx context.Context, input report.TransitionInput) (*domain.Report, error)
	UpdateContent(ctx context.Context, input report.UpdateContentInput) (*domain.Report, error)
	List(ctx context.Context, input report.ListInput) (*domain.ReportPage, error)
	Get(ctx context.Context, id string) (*domain.Report, error)
	Delete(ctx context.Context, id string) error
}

// ReportHandler serves report intake and triage endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type createReportRequest struct {
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	AuthorID   string        `json:"authorId"`
	AuthorName string        `json:"authorName"`
	Category   string        `json:"category"`
	Priority   string        `json:"priority"`
	Tags       []string      `json:"tags"`
	Images     []imageJSON   `json:"images"`
	Location   *locationJSON `json:"location"`
}

// Create handles POST /api/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.svc.Create(r.Context(), report.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		AuthorName: req.AuthorName,
		Category:   domain.ReportCategory(req.Category),
		Priority:   domain.ReportPriority(req.Priority),
		Tags:       req.Tags,
		Images:     toImageInputs(req.Images),
		Location:   req.Location.toInput(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}

// List handles GET /api/reports.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportPageResponse(page))
}

// Get handles GET /api/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

type updateReportRequest struct {
	Title    *string       `json:"title"`
	Content  *string       `json:"content"`
	Category *string       `json:"category"`
	Priority *string       `json:"priority"`
	Tags     *[]string     `json:"tags"`
	Images   *[]imageJSON  `json:"images"`
	Location *locationJSON `json:"location"`
}

// Update handles PATCH /api/reports/{id}.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := report.UpdateContentInput{
		ID:       r.PathValue("id"),
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Location: req.Location.toInput(),
	}
	if req.Category != nil {
		c := domain.ReportCategory(*req.Category)
		input.Category = &c
	}
	if req.Priority != nil {
		p := domain.ReportPriority(*req.Priority)
		input.Priority = &p
	}
	if req.Images != nil {
		images := toImageInputs(*req.Images)
		input.Images = &images
	}

	rep, err := h.svc.UpdateContent(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

type transitionRequest struct {
	Status          string        `json:"status"`
	RejectionReason string        `json:"rejectionReason"`
	Location        *locationJSON `json:"location"`
}

// Transition handles PUT /api/reports/{id}/status.
func (h *ReportHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.svc.Transition(r.Context(), report.TransitionInput{
		ID:              r.PathValue("id"),
		Status:          domain.ReportStatus(req.Status),
		RejectionReason: req.RejectionReason,
		Location:        req.Location.toInput(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Delete handles DELETE /api/reports/{id}.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
