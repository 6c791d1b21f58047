package render

import (
	"strings"
	"testing"
	"time"

	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/insight"
	"tripweaver/internal/pipeline"
	"tripweaver/internal/scoring"
	"tripweaver/internal/story"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Meta: core.TripMetadata{
			Title:           "Coastal Escape",
			StartDate:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
			TotalDistanceKm: 42.5,
			PhotoCount:      80,
		},
		Places: []pipeline.EnrichedPlace{
			{Cluster: core.PlaceCluster{ID: "c1", Name: "Sunset Beach"}, DisplayTitle: "🏖️ Sunset Beach", Scene: core.SceneBeach},
		},
		Moments: []scoring.MomentScore{
			{ClusterID: "c1", Total: 93, Grade: scoring.GradeLegendary, Badges: []scoring.Badge{scoring.BadgeGoldenHour}},
		},
		TripScore: &scoring.TripOverallScore{
			AverageScore: 93, PeakScore: 93, TotalBadges: 1,
			TripGrade: scoring.GradeLegendary,
			Summary:   "A trip for the books: 1 legendary moment(s).",
		},
		DNA: &dna.TravelDNA{
			Primary:        dna.ArchetypeNatureLover,
			Secondary:      dna.ArchetypeRelaxer,
			Pacing:         dna.PacingRelaxed,
			TimePreference: dna.TimePreference{Morning: 20, Afternoon: 30, Evening: 50},
			Traits:         []dna.Trait{{Name: "Night Owl", Code: "NO"}},
			Code:           "NL-RX-NO",
		},
		Story: &story.TravelStory{
			Title:    "Coastal Escape, Unhurried",
			Tagline:  "Slow hours, long light.",
			Opening:  "It began with three days and one beach.",
			Chapters: []story.Chapter{{Title: "🏖️ Sunset Beach", Body: "The hours blurred."}},
			Climax:   "The peak of the trip came at Sunset Beach, scoring 93 out of 100.",
			Closing:  "Three days, one standing promise to return.",
			Keywords: []string{"Sunset Beach"},
		},
		InsightViews: []insight.View{
			{Type: insight.TypeGoldenHourMagic, Title: "Golden Hour Magic", Description: "desc", Emoji: "🌅", Importance: insight.ImportanceHighlight},
		},
		InsightSummary: "Discovered 1 insight(s).",
	}
}

func TestReportContainsAllSections(t *testing.T) {
	report := Report(sampleResult())

	for _, want := range []string{
		"# Coastal Escape",
		"## Trip Score",
		"## Travel DNA",
		"`NL-RX-NO`",
		"## Moments",
		"🏖️ Sunset Beach",
		"## Coastal Escape, Unhurried",
		"Golden Hour Magic",
		"2026-06-10",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportOptionalSectionsOmitted(t *testing.T) {
	result := &pipeline.Result{Meta: core.TripMetadata{Title: "Quick Outing"}}
	report := Report(result)

	for _, absent := range []string{"## Travel DNA", "## Moments", "## Insights", "## Trip Score"} {
		if strings.Contains(report, absent) {
			t.Errorf("report for a bare result contains %q", absent)
		}
	}
	if !strings.Contains(report, "# Quick Outing") {
		t.Error("report missing the title heading")
	}
}

func TestReportUntitledTrip(t *testing.T) {
	report := Report(&pipeline.Result{})
	if !strings.HasPrefix(report, "# Trip Report") {
		t.Errorf("report = %q, want the fallback heading", report[:min(len(report), 40)])
	}
}
