// Package address resolves report coordinates to human-readable addresses.
package address

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
)

type geocoder interface {
	Lookup(ctx context.Context, lat, lng float64, language string) (*string, error)
}

type addressCache interface {
	Get(key string) (*string, bool)
	Set(key string, value *string)
}

// Resolver looks addresses up through a cache in front of a geocoder.
// It never returns an error: every failure degrades to nil.
type Resolver struct {
	geo     geocoder
	cache   addressCache
	enabled bool
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewResolver creates a Resolver. When enabled is false the geocoder is never
// called and only cached values are served.
func NewResolver(log *slog.Logger, geo geocoder, cache addressCache, enabled bool, m *metrics.Metrics) *Resolver {
	return &Resolver{
		geo:     geo,
		cache:   cache,
		enabled: enabled,
		metrics: m,
		log:     log.With("service", "address"),
	}
}

// CacheKey rounds coordinates to five decimal places (about a metre).
func CacheKey(lat, lng float64) string {
	return fmt.Sprintf("%.5f,%.5f", lat, lng)
}

// Resolve returns the address for the coordinates, or nil when none is known.
// Definitive misses are cached; provider failures are not.
func (r *Resolver) Resolve(ctx context.Context, lat, lng float64, language string) *string {
	key := CacheKey(lat, lng)
	if addr, ok := r.cache.Get(key); ok {
		r.metrics.GeocodeLookup(metrics.GeocodeHit)
		return addr
	}

	if !r.enabled {
		r.metrics.GeocodeLookup(metrics.GeocodeDisabled)
		return nil
	}

	addr, err := r.geo.Lookup(ctx, lat, lng, language)
	if err != nil {
		r.metrics.GeocodeLookup(metrics.GeocodeError)
		if errors.Is(err, domain.ErrNotConfigured) {
			r.log.WarnContext(ctx, "geocoder not configured")
			return nil
		}
		r.log.WarnContext(ctx, "geocode lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil
	}

	r.cache.Set(key, addr)
	if addr == nil {
		r.metrics.GeocodeLookup(metrics.GeocodeMiss)
	} else {
		r.metrics.GeocodeLookup(metrics.GeocodeResolved)
	}
	return addr
}
