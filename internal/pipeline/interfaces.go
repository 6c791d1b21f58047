package pipeline

import (
	"context"
	"time"

	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/insight"
	"tripweaver/internal/scoring"
	"tripweaver/internal/story"
)

// SceneResolver reduces a cluster's photos to one dominant scene category.
type SceneResolver interface {
	// DominantCategory never fails; degraded input yields SceneUnknown.
	DominantCategory(ctx context.Context, cluster core.PlaceCluster) core.SceneCategory
}

// HotspotFinder looks up nearby points of interest for a cluster.
type HotspotFinder interface {
	// NearbyHotspots returns grouped POIs; empty on failure, never an error.
	NearbyHotspots(ctx context.Context, center core.GeoPoint) core.NearbyHotspots

	// BetterPlaceName returns an improved display name for the coordinate, or
	// empty when no close landmark qualifies.
	BetterPlaceName(ctx context.Context, center core.GeoPoint) string
}

// MomentScorer rates clusters and aggregates the trip score.
type MomentScorer interface {
	Score(cluster core.PlaceCluster, scene core.SceneCategory, hotspots core.NearbyHotspots, all []core.PlaceCluster) scoring.MomentScore
	TripScore(moments []scoring.MomentScore) scoring.TripOverallScore
}

// DNAAnalyzer derives the traveler personality profile.
type DNAAnalyzer interface {
	Analyze(clusters []core.PlaceCluster, scenes map[string]core.SceneCategory) dna.TravelDNA
}

// StoryWeaver synthesizes the trip narrative.
type StoryWeaver interface {
	Weave(sctx story.Context) story.TravelStory
}

// InsightFinder runs the pattern detectors and summarizes their output.
type InsightFinder interface {
	Discover(ictx insight.Context) []insight.Insight
	Summarize(insights []insight.Insight) string
}

// StoryRefiner optionally polishes story prose. Implementations must degrade
// to the input text on failure.
type StoryRefiner interface {
	RefineStory(ctx context.Context, s story.TravelStory) story.TravelStory
}

// CacheManager caches adapter results between runs.
type CacheManager interface {
	GetSceneCategory(clusterID string, ttl time.Duration) (core.SceneCategory, bool)
	StoreSceneCategory(clusterID string, category core.SceneCategory) error
	GetHotspots(center core.GeoPoint, ttl time.Duration) (core.NearbyHotspots, bool)
	StoreHotspots(center core.GeoPoint, hotspots core.NearbyHotspots) error
}

// ProgressFunc observes coordinator progress. progress is in [0,1] and is
// monotonically non-decreasing across one analysis run.
type ProgressFunc func(progress float64, message string)
