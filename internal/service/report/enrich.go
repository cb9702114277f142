package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// enrichLocation fills a missing address. It never fails: an unresolved
// address leaves the location as is.
func (s *Service) enrichLocation(ctx context.Context, loc *domain.Location) {
	if loc == nil || loc.HasAddress() {
		return
	}
	if addr := s.resolver.Resolve(ctx, loc.Latitude, loc.Longitude, s.cfg.GeocodeLanguage); addr != nil {
		loc.Address = *addr
	}
}

// ingestImages uploads every item carrying inline data, in order. The first
// failure aborts and is returned unchanged.
func (s *Service) ingestImages(ctx context.Context, in []ImageInput) ([]domain.Image, error) {
	out := make([]domain.Image, 0, len(in))
	for i, item := range in {
		img := domain.Image{LocalURL: item.LocalURL}
		if item.Data != "" {
			url, err := s.uploader.Upload(ctx, item.Data, item.Filename)
			if err != nil {
				return nil, fmt.Errorf("image %d: %w", i, err)
			}
			img.PublicURL = url
		}
		out = append(out, img)
	}
	return out, nil
}
