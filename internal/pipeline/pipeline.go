package pipeline

import (
	"context"
	"fmt"
	"time"

	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/insight"
	"tripweaver/internal/logger"
	"tripweaver/internal/scoring"
	"tripweaver/internal/spatial"
	"tripweaver/internal/story"
)

// step is one coordinator stage with its fixed share of overall progress.
type step struct {
	name   string
	weight float64
}

// The eight ordered steps. Weights sum to 1.0.
var steps = []step{
	{name: "metadata", weight: 0.05},
	{name: "clustering", weight: 0.05},
	{name: "geocoding", weight: 0.05},
	{name: "vision", weight: 0.30},
	{name: "poi", weight: 0.20},
	{name: "titles", weight: 0.10},
	{name: "advanced", weight: 0.20},
	{name: "finalizing", weight: 0.05},
}

// Config holds coordinator configuration.
type Config struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CacheEnabled: true,
		CacheTTL:     7 * 24 * time.Hour,
	}
}

// Coordinator orchestrates the full enrichment pipeline. A coordinator
// instance supports one in-flight analysis at a time; its progress fields are
// only mutated by the running call.
type Coordinator struct {
	scenes   SceneResolver
	hotspots HotspotFinder
	scorer   MomentScorer
	analyzer DNAAnalyzer
	weaver   StoryWeaver
	finder   InsightFinder
	refiner  StoryRefiner
	cache    CacheManager
	config   *Config

	onProgress      ProgressFunc
	completedWeight float64
	lastReported    float64
}

// NewCoordinator wires the coordinator. scenes, hotspots, refiner and cache
// may be nil; the corresponding enrichment is skipped. scorer, analyzer,
// weaver and finder must be non-nil.
func NewCoordinator(
	scenes SceneResolver,
	hotspots HotspotFinder,
	scorer MomentScorer,
	analyzer DNAAnalyzer,
	weaver StoryWeaver,
	finder InsightFinder,
	refiner StoryRefiner,
	cache CacheManager,
	config *Config,
	onProgress ProgressFunc,
) *Coordinator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Coordinator{
		scenes:     scenes,
		hotspots:   hotspots,
		scorer:     scorer,
		analyzer:   analyzer,
		weaver:     weaver,
		finder:     finder,
		refiner:    refiner,
		cache:      cache,
		config:     config,
		onProgress: onProgress,
	}
}

// Input is one analysis request.
type Input struct {
	Meta     core.TripMetadata
	Clusters []core.PlaceCluster
	Level    core.AnalysisLevel
	Context  core.TripContext
}

// EnrichedPlace is one cluster plus whatever enrichment the run produced.
type EnrichedPlace struct {
	Cluster      core.PlaceCluster   `json:"cluster"`
	BetterName   string              `json:"better_name,omitempty"`
	Scene        core.SceneCategory  `json:"scene"`
	Hotspots     core.NearbyHotspots `json:"hotspots"`
	DisplayTitle string              `json:"display_title"`
}

// Stats tracks pipeline execution metrics.
type Stats struct {
	ClustersTotal   int           `json:"clusters_total"`
	ScenesResolved  int           `json:"scenes_resolved"`
	HotspotClusters int           `json:"hotspot_clusters"`
	CacheHits       int           `json:"cache_hits"`
	CacheMisses     int           `json:"cache_misses"`
	ProcessingTime  time.Duration `json:"processing_time"`
	StartTime       time.Time     `json:"start_time"`
	EndTime         time.Time     `json:"end_time"`
}

// Result is the complete output of one analysis run. Optional stages leave
// their fields nil/empty; structure is never partial where a default exists.
type Result struct {
	Meta           core.TripMetadata             `json:"meta"`
	Places         []EnrichedPlace               `json:"places"`
	Scenes         map[string]core.SceneCategory `json:"scenes"`
	Moments        []scoring.MomentScore         `json:"moments,omitempty"`
	TripScore      *scoring.TripOverallScore     `json:"trip_score,omitempty"`
	DNA            *dna.TravelDNA                `json:"dna,omitempty"`
	Story          *story.TravelStory            `json:"story,omitempty"`
	Insights       []insight.Insight             `json:"-"`
	InsightViews   []insight.View                `json:"insights,omitempty"`
	InsightSummary string                        `json:"insight_summary,omitempty"`
	Stats          Stats                         `json:"stats"`
}

// Analyze executes the eight steps in order. It returns an error only for
// structural problems (nil engines, canceled context); adapter failures
// degrade per unit and never abort the run.
func (c *Coordinator) Analyze(ctx context.Context, input Input) (*Result, error) {
	if c.scorer == nil || c.analyzer == nil || c.weaver == nil || c.finder == nil {
		return nil, fmt.Errorf("coordinator is missing a required engine")
	}

	start := time.Now()
	c.completedWeight = 0
	c.lastReported = 0

	result := &Result{
		Meta:   input.Meta,
		Scenes: make(map[string]core.SceneCategory),
		Stats:  Stats{ClustersTotal: len(input.Clusters), StartTime: start},
	}

	// Step 1: metadata. Trip distance falls back to the cluster path length
	// when the collaborator did not supply one.
	c.report(0, 0, "Reading trip metadata")
	if result.Meta.TotalDistanceKm == 0 && len(input.Clusters) > 1 {
		result.Meta.TotalDistanceKm = spatial.PathDistanceKm(input.Clusters)
	}
	c.finishStep(0, "Trip metadata ready")

	// Steps 2 and 3 belong to upstream collaborators; clusters arrive here
	// already clustered and geocoded, so both complete immediately.
	c.report(1, 0, "Checking place clusters")
	c.finishStep(1, fmt.Sprintf("%d place cluster(s) received", len(input.Clusters)))
	c.report(2, 0, "Checking geocoding")
	c.finishStep(2, "Place names ready")

	// Step 4: vision.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Places = make([]EnrichedPlace, len(input.Clusters))
	for i, cluster := range input.Clusters {
		result.Places[i] = EnrichedPlace{Cluster: cluster, Scene: core.SceneUnknown}
	}
	if input.Level.AtLeast(core.LevelSmart) && c.scenes != nil {
		c.runVision(ctx, input, result)
	}
	c.finishStep(3, fmt.Sprintf("Scene analysis complete (%d resolved)", result.Stats.ScenesResolved))

	// Step 5: POI.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Level.AtLeast(core.LevelSmart) && c.hotspots != nil {
		c.runPOI(ctx, input, result)
	}
	c.finishStep(4, fmt.Sprintf("Nearby place lookup complete (%d with hotspots)", result.Stats.HotspotClusters))

	// Step 6: titles always run, consuming whatever scene/POI output exists.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range result.Places {
		result.Places[i].DisplayTitle = displayTitle(result.Places[i])
		c.report(5, float64(i+1)/float64(max(len(result.Places), 1)), "Generating place titles")
	}
	c.finishStep(5, "Place titles generated")

	// Step 7: the expensive personality, narrative and insight stages only
	// run for travel contexts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input.Context.IsTravel() {
		c.runAdvanced(ctx, input, result)
	}
	c.finishStep(6, "Advanced analysis complete")

	// Step 8: finalize.
	result.InsightViews = make([]insight.View, 0, len(result.Insights))
	for _, in := range result.Insights {
		result.InsightViews = append(result.InsightViews, in.View())
	}
	result.Stats.EndTime = time.Now()
	result.Stats.ProcessingTime = result.Stats.EndTime.Sub(start)
	c.finishStep(7, "Analysis complete")

	return result, nil
}

func (c *Coordinator) runVision(ctx context.Context, input Input, result *Result) {
	total := len(input.Clusters)
	for i := range result.Places {
		if ctx.Err() != nil {
			return
		}
		cluster := result.Places[i].Cluster

		category, cached := c.cachedScene(cluster.ID, &result.Stats)
		if !cached {
			category = c.scenes.DominantCategory(ctx, cluster)
			c.storeScene(cluster.ID, category)
		}

		result.Places[i].Scene = category
		if category != core.SceneUnknown {
			result.Scenes[cluster.ID] = category
			result.Stats.ScenesResolved++
		}
		c.report(3, float64(i+1)/float64(total), fmt.Sprintf("Analyzing photos %d/%d", i+1, total))
	}
}

func (c *Coordinator) runPOI(ctx context.Context, input Input, result *Result) {
	total := len(input.Clusters)
	for i := range result.Places {
		if ctx.Err() != nil {
			return
		}
		center := result.Places[i].Cluster.Center

		hotspots, cached := c.cachedHotspots(center, &result.Stats)
		if !cached {
			hotspots = c.hotspots.NearbyHotspots(ctx, center)
			c.storeHotspots(center, hotspots)
		}
		result.Places[i].Hotspots = hotspots
		if !hotspots.IsEmpty() {
			result.Stats.HotspotClusters++
		}

		if better := c.hotspots.BetterPlaceName(ctx, center); better != "" {
			result.Places[i].BetterName = better
		}
		c.report(4, float64(i+1)/float64(total), fmt.Sprintf("Finding nearby places %d/%d", i+1, total))
	}
}

func (c *Coordinator) runAdvanced(ctx context.Context, input Input, result *Result) {
	clusters := input.Clusters

	c.report(6, 0.1, "Scoring moments")
	moments := make([]scoring.MomentScore, 0, len(clusters))
	momentByID := make(map[string]scoring.MomentScore, len(clusters))
	for _, place := range result.Places {
		moment := c.scorer.Score(place.Cluster, place.Scene, place.Hotspots, clusters)
		moments = append(moments, moment)
		momentByID[place.Cluster.ID] = moment
	}
	result.Moments = moments
	tripScore := c.scorer.TripScore(moments)
	result.TripScore = &tripScore

	c.report(6, 0.4, "Reading your travel DNA")
	profile := c.analyzer.Analyze(clusters, result.Scenes)
	result.DNA = &profile

	c.report(6, 0.6, "Weaving the story")
	tale := c.weaver.Weave(story.Context{
		Clusters: clusters,
		Meta:     result.Meta,
		DNA:      result.DNA,
		Moments:  momentByID,
	})
	if input.Level.AtLeast(core.LevelAdvanced) && c.refiner != nil {
		tale = c.refiner.RefineStory(ctx, tale)
	}
	result.Story = &tale

	c.report(6, 0.85, "Looking for patterns")
	result.Insights = c.finder.Discover(insight.Context{
		Clusters: clusters,
		Scenes:   result.Scenes,
		Moments:  momentByID,
		DNA:      result.DNA,
		Meta:     result.Meta,
	})
	result.InsightSummary = c.finder.Summarize(result.Insights)
}

// displayTitle prefers the POI-derived name, then a scene-flavored title,
// then the cluster's own name.
func displayTitle(place EnrichedPlace) string {
	if place.BetterName != "" {
		return place.BetterName
	}
	name := place.Cluster.Name
	if name == "" {
		name = place.Cluster.Activity.DisplayName()
	}
	if place.Scene != core.SceneUnknown {
		return fmt.Sprintf("%s %s", place.Scene.Emoji(), name)
	}
	return name
}

// cache helpers; every cache failure is silent besides a debug log, the
// pipeline works identically without the cache.

func (c *Coordinator) cachedScene(clusterID string, stats *Stats) (core.SceneCategory, bool) {
	if !c.config.CacheEnabled || c.cache == nil {
		return core.SceneUnknown, false
	}
	category, ok := c.cache.GetSceneCategory(clusterID, c.config.CacheTTL)
	if ok {
		stats.CacheHits++
		return category, true
	}
	stats.CacheMisses++
	return core.SceneUnknown, false
}

func (c *Coordinator) storeScene(clusterID string, category core.SceneCategory) {
	if !c.config.CacheEnabled || c.cache == nil {
		return
	}
	if err := c.cache.StoreSceneCategory(clusterID, category); err != nil {
		logger.Debug("scene cache write failed", "cluster", clusterID, "reason", err.Error())
	}
}

func (c *Coordinator) cachedHotspots(center core.GeoPoint, stats *Stats) (core.NearbyHotspots, bool) {
	if !c.config.CacheEnabled || c.cache == nil {
		return core.NearbyHotspots{}, false
	}
	hotspots, ok := c.cache.GetHotspots(center, c.config.CacheTTL)
	if ok {
		stats.CacheHits++
		return hotspots, true
	}
	stats.CacheMisses++
	return core.NearbyHotspots{}, false
}

func (c *Coordinator) storeHotspots(center core.GeoPoint, hotspots core.NearbyHotspots) {
	if !c.config.CacheEnabled || c.cache == nil {
		return
	}
	if err := c.cache.StoreHotspots(center, hotspots); err != nil {
		logger.Debug("hotspot cache write failed", "reason", err.Error())
	}
}

// report publishes progress for a fractional position inside a step, clamped
// to [0,1] and guaranteed non-decreasing.
func (c *Coordinator) report(stepIndex int, frac float64, message string) {
	if c.onProgress == nil {
		return
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	progress := c.completedWeight + steps[stepIndex].weight*frac
	if progress > 1 {
		progress = 1
	}
	if progress < c.lastReported {
		progress = c.lastReported
	}
	c.lastReported = progress
	c.onProgress(progress, message)
}

// finishStep marks a step complete and reports its boundary.
func (c *Coordinator) finishStep(stepIndex int, message string) {
	c.report(stepIndex, 1, message)
	c.completedWeight += steps[stepIndex].weight
	if c.completedWeight > 1 {
		c.completedWeight = 1
	}
}
