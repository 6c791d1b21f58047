package pipeline

import (
	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/insight"
	"tripweaver/internal/scoring"
	"tripweaver/internal/story"
)

// PlaceRecord is the caller-owned mutable view of one place. The coordinator
// only overwrites a field when the run actually produced a non-empty value
// for it; absent enrichment leaves the caller's original data untouched.
type PlaceRecord struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Title    string              `json:"title,omitempty"`
	Scene    core.SceneCategory  `json:"scene,omitempty"`
	Hotspots core.NearbyHotspots `json:"hotspots,omitempty"`
}

// TripRecord is the caller-owned mutable result the analysis merges into.
type TripRecord struct {
	Places         []PlaceRecord             `json:"places"`
	DNA            *dna.TravelDNA            `json:"dna,omitempty"`
	Moments        []scoring.MomentScore     `json:"moments,omitempty"`
	TripScore      *scoring.TripOverallScore `json:"trip_score,omitempty"`
	Story          *story.TravelStory        `json:"story,omitempty"`
	Insights       []insight.View            `json:"insights,omitempty"`
	InsightSummary string                    `json:"insight_summary,omitempty"`
}

// MergeInto writes the run's enrichments back into the caller's record,
// matching places by cluster identity.
func (r *Result) MergeInto(record *TripRecord) {
	if record == nil {
		return
	}

	byID := make(map[string]*EnrichedPlace, len(r.Places))
	for i := range r.Places {
		byID[r.Places[i].Cluster.ID] = &r.Places[i]
	}

	for i := range record.Places {
		enriched, ok := byID[record.Places[i].ID]
		if !ok {
			continue
		}
		if enriched.BetterName != "" {
			record.Places[i].Name = enriched.BetterName
		}
		if enriched.Scene != core.SceneUnknown && enriched.Scene != "" {
			record.Places[i].Scene = enriched.Scene
		}
		if !enriched.Hotspots.IsEmpty() {
			record.Places[i].Hotspots = enriched.Hotspots
		}
		if enriched.DisplayTitle != "" {
			record.Places[i].Title = enriched.DisplayTitle
		}
	}

	if r.DNA != nil {
		record.DNA = r.DNA
	}
	if len(r.Moments) > 0 {
		record.Moments = r.Moments
	}
	if r.TripScore != nil {
		record.TripScore = r.TripScore
	}
	if r.Story != nil {
		record.Story = r.Story
	}
	if len(r.InsightViews) > 0 {
		record.Insights = r.InsightViews
	}
	if r.InsightSummary != "" {
		record.InsightSummary = r.InsightSummary
	}
}
