package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

type statsService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Charts(ctx context.Context) (*domain.Charts, error)
}

// StatsHandler serves dashboard statistics.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type trendResponse struct {
	WindowDays    int  `json:"windowDays"`
	Current       int  `json:"current"`
	Previous      int  `json:"previous"`
	PercentChange *int `json:"percentChange"`
}

type dashboardResponse struct {
	Total      int           `json:"total"`
	Pending    int           `json:"pending"`
	Processing int           `json:"processing"`
	Completed  int           `json:"completed"`
	Rejected   int           `json:"rejected"`
	Week       trendResponse `json:"week"`
	Month      trendResponse `json:"month"`
}

type dailyResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type categoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type chartsResponse struct {
	Daily      []dailyResponse    `json:"daily"`
	ByCategory []categoryResponse `json:"byCategory"`
}

func toTrendResponse(t domain.Trend) trendResponse {
	return trendResponse{
		WindowDays:    t.WindowDays,
		Current:       t.Current,
		Previous:      t.Previous,
		PercentChange: t.PercentChange,
	}
}

// Dashboard handles GET /api/stats.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Total:      d.ByStatus.Total,
		Pending:    d.ByStatus.Pending,
		Processing: d.ByStatus.Processing,
		Completed:  d.ByStatus.Completed,
		Rejected:   d.ByStatus.Rejected,
		Week:       toTrendResponse(d.Week),
		Month:      toTrendResponse(d.Month),
	})
}

// Charts handles GET /api/stats/charts.
func (h *StatsHandler) Charts(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Charts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := chartsResponse{
		Daily:      make([]dailyResponse, len(c.Daily)),
		ByCategory: make([]categoryResponse, len(c.ByCategory)),
	}
	for i, d := range c.Daily {
		resp.Daily[i] = dailyResponse{Date: d.Date, Count: d.Count}
	}
	for i, cc := range c.ByCategory {
		resp.ByCategory[i] = categoryResponse{Category: cc.Category, Count: cc.Count}
	}
	writeJSON(w, http.StatusOK, resp)
}
