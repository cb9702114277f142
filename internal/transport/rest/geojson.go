package rest

import (
	"net/http"

	geojson "github.com/paulmach/go.geojson"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// GeoJSON handles GET /api/reports/geojson. It accepts the same filters as
// List and returns the located reports of the requested page as points.
func (h *ReportHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.HasLocation == nil {
		located := true
		input.HasLocation = &located
	}

	page, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	body, err := toFeatureCollection(page.Items).MarshalJSON()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck
}

func toFeatureCollection(reports []domain.Report) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, rep := range reports {
		if rep.Location == nil {
			continue
		}
		f := geojson.NewPointFeature([]float64{rep.Location.Longitude, rep.Location.Latitude})
		f.ID = rep.ID
		f.SetProperty("title", rep.Title)
		f.SetProperty("category", rep.Category.String())
		f.SetProperty("priority", rep.Priority.String())
		f.SetProperty("status", rep.Status.String())
		f.SetProperty("createdAt", rep.CreatedAt)
		if rep.Location.Address != "" {
			f.SetProperty("address", rep.Location.Address)
		}
		fc.AddFeature(f)
	}
	return fc
}
