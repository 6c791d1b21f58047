package pipeline

import (
	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/insight"
	"tripweaver/internal/scoring"
	"tripweaver/internal/story"
)

// ScorerAdapter exposes the scoring package through the MomentScorer
// interface.
type ScorerAdapter struct{}

// NewScorerAdapter creates the scoring adapter.
func NewScorerAdapter() *ScorerAdapter {
	return &ScorerAdapter{}
}

func (a *ScorerAdapter) Score(cluster core.PlaceCluster, scene core.SceneCategory, hotspots core.NearbyHotspots, all []core.PlaceCluster) scoring.MomentScore {
	return scoring.CalculateScore(cluster, scene, hotspots, all)
}

func (a *ScorerAdapter) TripScore(moments []scoring.MomentScore) scoring.TripOverallScore {
	return scoring.CalculateTripScore(moments)
}

// DNAAdapter exposes the dna package through the DNAAnalyzer interface.
type DNAAdapter struct{}

// NewDNAAdapter creates the DNA adapter.
func NewDNAAdapter() *DNAAdapter {
	return &DNAAdapter{}
}

func (a *DNAAdapter) Analyze(clusters []core.PlaceCluster, scenes map[string]core.SceneCategory) dna.TravelDNA {
	return dna.Analyze(clusters, scenes)
}

// StoryAdapter exposes the story package through the StoryWeaver interface.
type StoryAdapter struct {
	selector story.Selector
}

// NewStoryAdapter creates the story adapter. selector may be nil, in which
// case each weave uses a fresh random selector.
func NewStoryAdapter(selector story.Selector) *StoryAdapter {
	return &StoryAdapter{selector: selector}
}

func (a *StoryAdapter) Weave(sctx story.Context) story.TravelStory {
	if sctx.Selector == nil {
		sctx.Selector = a.selector
	}
	return story.Generate(sctx)
}

// InsightAdapter exposes the insight package through the InsightFinder
// interface.
type InsightAdapter struct{}

// NewInsightAdapter creates the insight adapter.
func NewInsightAdapter() *InsightAdapter {
	return &InsightAdapter{}
}

func (a *InsightAdapter) Discover(ictx insight.Context) []insight.Insight {
	return insight.Discover(ictx)
}

func (a *InsightAdapter) Summarize(insights []insight.Insight) string {
	return insight.Summarize(insights)
}
