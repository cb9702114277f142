package rest

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/service/report"
)

type locationJSON struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address,omitempty"`
}

func (l *locationJSON) toInput() *report.LocationInput {
	if l == nil {
		return nil
	}
	return &report.LocationInput{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

// imageJSON accepts either an object or a bare string. A string starting
// with "data:" is an inline payload, anything else a source locator.
type imageJSON struct {
	LocalURL string `json:"localUrl"`
	Data     string `json:"data"`
	Filename string `json:"filename"`
}

func (i *imageJSON) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if strings.HasPrefix(s, "data:") {
			i.Data = s
		} else {
			i.LocalURL = s
		}
		return nil
	}

	type plain imageJSON
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*i = imageJSON(p)
	return nil
}

func toImageInputs(in []imageJSON) []report.ImageInput {
	out := make([]report.ImageInput, len(in))
	for i, img := range in {
		out[i] = report.ImageInput{LocalURL: img.LocalURL, Data: img.Data, Filename: img.Filename}
	}
	return out
}

type imageResponse struct {
	LocalURL  string `json:"localUrl,omitempty"`
	PublicURL string `json:"publicUrl,omitempty"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type reportResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Content         string            `json:"content"`
	AuthorID        string            `json:"authorId,omitempty"`
	AuthorName      string            `json:"authorName,omitempty"`
	Category        string            `json:"category"`
	Priority        string            `json:"priority"`
	Status          string            `json:"status"`
	Tags            []string          `json:"tags"`
	Images          []imageResponse   `json:"images"`
	Location        *locationResponse `json:"location"`
	ReviewedBy      *string           `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty"`
	RejectionReason *string           `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func toReportResponse(r *domain.Report) reportResponse {
	resp := reportResponse{
		ID:              r.ID,
		Title:           r.Title,
		Content:         r.Content,
		AuthorID:        r.AuthorID,
		AuthorName:      r.AuthorName,
		Category:        r.Category.String(),
		Priority:        r.Priority.String(),
		Status:          r.Status.String(),
		Tags:            r.Tags,
		Images:          make([]imageResponse, len(r.Images)),
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for i, img := range r.Images {
		resp.Images[i] = imageResponse{LocalURL: img.LocalURL, PublicURL: img.PublicURL}
	}
	if r.Location != nil {
		resp.Location = &locationResponse{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			Address:   r.Location.Address,
		}
	}
	return resp
}

type paginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type reportPageResponse struct {
	Data       []reportResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toReportPageResponse(p *domain.ReportPage) reportPageResponse {
	resp := reportPageResponse{
		Data: make([]reportResponse, len(p.Items)),
		Pagination: paginationResponse{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
			HasNext:    p.HasNext(),
			HasPrev:    p.HasPrev(),
		},
	}
	for i := range p.Items {
		resp.Data[i] = toReportResponse(&p.Items[i])
	}
	return resp
}

type adminResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toAdminResponse(a *domain.Admin) adminResponse {
	return adminResponse{
		ID:          a.ID.String(),
		Email:       a.Email,
		Name:        a.Name,
		Role:        a.Role.String(),
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}

type deviceResponse struct {
	ID         string    `json:"id"`
	DeviceType string    `json:"deviceType"`
	OSVersion  string    `json:"osVersion"`
	AppVersion string    `json:"appVersion"`
	Language   string    `json:"language"`
	PushToken  *string   `json:"pushToken"`
	Reports    *int      `json:"reports,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toDeviceResponse(d *domain.Device) deviceResponse {
	return deviceResponse{
		ID:         d.ID,
		DeviceType: d.DeviceType,
		OSVersion:  d.OSVersion,
		AppVersion: d.AppVersion,
		Language:   d.Language,
		PushToken:  d.PushToken,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDeviceWithReportsResponse(d *domain.DeviceWithReports) deviceResponse {
	resp := toDeviceResponse(&d.Device)
	n := d.Reports
	resp.Reports = &n
	return resp
}
