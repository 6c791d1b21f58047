package poi

import (
	"context"
	"fmt"
	"sort"

	"tripweaver/internal/core"
	"tripweaver/internal/logger"
	"tripweaver/internal/spatial"
)

const (
	// DefaultRadiusMeters is the search radius around a cluster center.
	DefaultRadiusMeters = 500.0
	// DefaultLimit caps results per category.
	DefaultLimit = 5

	// Landmark proximity thresholds for better-name derivation.
	exactNameDistanceMeters  = 50.0
	betterNameDistanceMeters = 200.0
)

// Searcher is the black-box point-of-interest capability. Given a coordinate
// and a category it returns nearby results; implementations may over-return
// beyond the radius.
type Searcher interface {
	Search(ctx context.Context, center core.GeoPoint, category core.POICategory, radiusMeters float64) ([]core.POI, error)
}

// Finder wraps the POI search capability behind a failure-tolerant interface:
// one category failing never aborts the others.
type Finder struct {
	searcher     Searcher
	radiusMeters float64
	limit        int
}

// Option configures a Finder.
type Option func(*Finder)

// WithRadius overrides the search radius in meters.
func WithRadius(meters float64) Option {
	return func(f *Finder) {
		if meters > 0 {
			f.radiusMeters = meters
		}
	}
}

// WithLimit overrides the per-category result cap.
func WithLimit(limit int) Option {
	return func(f *Finder) {
		if limit > 0 {
			f.limit = limit
		}
	}
}

// NewFinder creates a Finder over the given searcher.
func NewFinder(searcher Searcher, opts ...Option) *Finder {
	f := &Finder{
		searcher:     searcher,
		radiusMeters: DefaultRadiusMeters,
		limit:        DefaultLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NearbyHotspots returns cafes, restaurants and attractions around the center,
// each category distance-sorted and re-filtered to the radius. A failed
// category search is logged and yields an empty slice for that category only.
func (f *Finder) NearbyHotspots(ctx context.Context, center core.GeoPoint) core.NearbyHotspots {
	if f.searcher == nil {
		return core.NearbyHotspots{}
	}
	return core.NearbyHotspots{
		Cafes:       f.searchCategory(ctx, center, core.POICafe),
		Restaurants: f.searchCategory(ctx, center, core.POIRestaurant),
		Attractions: f.searchCategory(ctx, center, core.POIAttraction),
	}
}

func (f *Finder) searchCategory(ctx context.Context, center core.GeoPoint, category core.POICategory) []core.POI {
	results, err := f.searcher.Search(ctx, center, category, f.radiusMeters)
	if err != nil {
		logger.Warn("POI search failed for category", "category", string(category), "reason", err.Error())
		return nil
	}
	return f.filterAndSort(center, results)
}

// filterAndSort recomputes distances from the center, drops results outside
// the radius even if the underlying search over-returned, sorts by distance
// and applies the per-category limit.
func (f *Finder) filterAndSort(center core.GeoPoint, results []core.POI) []core.POI {
	filtered := make([]core.POI, 0, len(results))
	for _, p := range results {
		p.DistanceMeters = spatial.DistanceMeters(center, p.Location)
		if p.DistanceMeters <= f.radiusMeters {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DistanceMeters < filtered[j].DistanceMeters
	})
	if len(filtered) > f.limit {
		filtered = filtered[:f.limit]
	}
	return filtered
}

// BetterPlaceName returns an improved display name when a landmark lies very
// close to the cluster center: the landmark's own name inside 50m, a
// "Near <name>" form inside 200m, otherwise empty. The result is a pure
// enrichment; callers keep their original name when it is empty.
func (f *Finder) BetterPlaceName(ctx context.Context, center core.GeoPoint) string {
	if f.searcher == nil {
		return ""
	}
	results, err := f.searcher.Search(ctx, center, core.POILandmark, betterNameDistanceMeters)
	if err != nil {
		logger.Warn("landmark search failed", "reason", err.Error())
		return ""
	}

	var nearest *core.POI
	for i := range results {
		results[i].DistanceMeters = spatial.DistanceMeters(center, results[i].Location)
		if results[i].DistanceMeters > betterNameDistanceMeters || results[i].Name == "" {
			continue
		}
		if nearest == nil || results[i].DistanceMeters < nearest.DistanceMeters {
			nearest = &results[i]
		}
	}
	if nearest == nil {
		return ""
	}
	if nearest.DistanceMeters < exactNameDistanceMeters {
		return nearest.Name
	}
	return fmt.Sprintf("Near %s", nearest.Name)
}
