package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/scoring"
	"tripweaver/internal/spatial"
)

// fullCircleRadiusMeters is the first/last proximity below which a trip counts
// as having come full circle.
const fullCircleRadiusMeters = 500.0

// Context carries the shared inputs every detector group scans. Scenes is
// keyed by cluster ID; Moments, DNA and Scenes may be absent.
type Context struct {
	Clusters []core.PlaceCluster
	Scenes   map[string]core.SceneCategory
	Moments  map[string]scoring.MomentScore
	DNA      *dna.TravelDNA
	Meta     core.TripMetadata
}

// Discover runs the five independent detector groups over the context and
// returns the combined list sorted non-increasing by importance. Detectors
// never read each other's output and overlapping discoveries are kept, not
// merged.
func Discover(ictx Context) []Insight {
	var out []Insight
	out = append(out, detectTimePatterns(ictx)...)
	out = append(out, detectPlaceDiscoveries(ictx)...)
	out = append(out, detectActivityPatterns(ictx)...)
	out = append(out, detectStatistics(ictx)...)
	out = append(out, detectSpecial(ictx)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}

func newInsight(t Type, importance Importance, title, description, emoji string, related []core.PlaceCluster) Insight {
	return Insight{
		ID:          uuid.NewString(),
		Type:        t,
		Category:    t.Category(),
		Title:       title,
		Description: description,
		Emoji:       emoji,
		Importance:  importance,
		Related:     related,
	}
}

func isGoldenHour(hour int) bool {
	return (hour >= 5 && hour <= 7) || (hour >= 17 && hour <= 19)
}

func detectTimePatterns(ictx Context) []Insight {
	var out []Insight

	var golden []core.PlaceCluster
	var night []core.PlaceCluster
	var early []core.PlaceCluster
	hourCounts := make(map[int]int)
	for _, cluster := range ictx.Clusters {
		hour := cluster.StartHour()
		hourCounts[hour]++
		if isGoldenHour(hour) {
			golden = append(golden, cluster)
		}
		if hour >= 20 || hour < 5 {
			night = append(night, cluster)
		}
		if hour >= 5 && hour < 8 {
			early = append(early, cluster)
		}
	}

	if len(golden) > 0 {
		importance := ImportanceNotable
		if len(golden) >= 3 {
			importance = ImportanceHighlight
		}
		out = append(out, newInsight(TypeGoldenHourMagic, importance,
			"Golden Hour Magic",
			fmt.Sprintf("You visited %d place(s) during golden hour, when the light is at its best.", len(golden)),
			"🌅", golden))
	}

	if hour, count := dominantHour(hourCounts); count >= 2 {
		out = append(out, newInsight(TypeActiveHour, ImportanceNotable,
			"Your Power Hour",
			fmt.Sprintf("%d of your visits started around %02d:00 — clearly your moving hour.", count, hour),
			"⏰", nil))
	}

	if len(night) >= 2 {
		out = append(out, newInsight(TypeNightExplorer, ImportanceNotable,
			"Night Explorer",
			fmt.Sprintf("%d stops began after dark. The trip did not end at sunset.", len(night)),
			"🌙", night))
	} else if len(early) >= 2 {
		out = append(out, newInsight(TypeEarlyRiser, ImportanceNotable,
			"Early Riser",
			fmt.Sprintf("%d stops began before 08:00. The mornings were not wasted.", len(early)),
			"🌄", early))
	}

	return out
}

// dominantHour returns the most frequent start hour; ties resolve to the
// earlier hour of the day.
func dominantHour(counts map[int]int) (int, int) {
	bestHour, bestCount := 0, 0
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > bestCount {
			bestHour, bestCount = hour, counts[hour]
		}
	}
	return bestHour, bestCount
}

func detectPlaceDiscoveries(ictx Context) []Insight {
	var out []Insight

	var longStays []core.PlaceCluster
	var longest *core.PlaceCluster
	var longestDwell time.Duration
	for i, cluster := range ictx.Clusters {
		dwell, ok := cluster.Duration()
		if !ok {
			continue
		}
		if dwell >= time.Hour {
			longStays = append(longStays, cluster)
		}
		if dwell > longestDwell {
			longest = &ictx.Clusters[i]
			longestDwell = dwell
		}
	}

	if len(longStays) > 0 {
		out = append(out, newInsight(TypeLongStay, ImportanceNotable,
			"Taking It Slow",
			fmt.Sprintf("You settled in for an hour or more at %d place(s) instead of rushing through.", len(longStays)),
			"⏳", longStays))
	}
	if longest != nil && longestDwell >= time.Hour {
		out = append(out, newInsight(TypeLongestStay, ImportanceInteresting,
			"The Place That Held You",
			fmt.Sprintf("%s kept you for %d minutes, longer than anywhere else on the trip.", longest.Name, int(longestDwell.Minutes())),
			"🪑", []core.PlaceCluster{*longest}))
	}

	var unexpected []core.PlaceCluster
	for _, cluster := range ictx.Clusters {
		scene, ok := ictx.Scenes[cluster.ID]
		if !ok || scene == core.SceneUnknown {
			continue
		}
		if mapped, ok := scene.ActivityType(); ok && mapped != cluster.Activity {
			unexpected = append(unexpected, cluster)
		}
	}
	if len(unexpected) >= 2 {
		out = append(out, newInsight(TypeUnexpectedDiscovery, ImportanceInteresting,
			"Unexpected Discoveries",
			fmt.Sprintf("At %d place(s) your photos told a different story than the itinerary did.", len(unexpected)),
			"🔀", unexpected))
	}

	for _, cluster := range ictx.Clusters {
		moment, ok := ictx.Moments[cluster.ID]
		if !ok || moment.Components.Uniqueness < 10 || moment.Total < 70 {
			continue
		}
		out = append(out, newInsight(TypeHiddenGem, ImportanceInteresting,
			"Hidden Gem",
			fmt.Sprintf("%s was unlike anywhere else you went, and it scored %d for it.", cluster.Name, moment.Total),
			"💎", []core.PlaceCluster{cluster}))
	}

	return out
}

func detectActivityPatterns(ictx Context) []Insight {
	distinct := make(map[core.ActivityType]bool)
	for _, cluster := range ictx.Clusters {
		distinct[cluster.Activity] = true
	}

	var out []Insight
	switch {
	case len(distinct) >= 5:
		out = append(out, newInsight(TypeDiverseExplorer, ImportanceHighlight,
			"A Bit of Everything",
			fmt.Sprintf("You mixed %d different kinds of activity into one trip.", len(distinct)),
			"🎨", nil))
	case len(distinct) <= 2 && len(ictx.Clusters) >= 4:
		out = append(out, newInsight(TypeDeepDive, ImportanceNotable,
			"Deep Dive",
			fmt.Sprintf("%d stops, %d kind(s) of activity — you knew what you came for and went all in.", len(ictx.Clusters), len(distinct)),
			"🤿", nil))
	}
	return out
}

func detectStatistics(ictx Context) []Insight {
	var out []Insight

	// Only the single highest qualifying distance band fires.
	distance := ictx.Meta.TotalDistanceKm
	switch {
	case distance >= 100:
		out = append(out, newInsight(TypeDistanceMilestone, ImportanceExceptional,
			"Serious Ground Covered",
			fmt.Sprintf("You traveled %.0f km on this trip — a genuine expedition.", distance),
			"🛣️", nil))
	case distance >= 50:
		out = append(out, newInsight(TypeDistanceMilestone, ImportanceHighlight,
			"Ground Covered",
			fmt.Sprintf("You traveled %.0f km — well beyond a stroll.", distance),
			"🛣️", nil))
	case distance >= 10:
		out = append(out, newInsight(TypeDistanceMilestone, ImportanceNotable,
			"On the Move",
			fmt.Sprintf("You covered %.0f km across the trip.", distance),
			"🚶", nil))
	}

	photos := ictx.Meta.PhotoCount
	switch {
	case photos >= 100:
		out = append(out, newInsight(TypePhotoMilestone, ImportanceHighlight,
			"Memory Archive",
			fmt.Sprintf("%d photos — this trip is thoroughly documented.", photos),
			"📸", nil))
	case photos >= 50:
		out = append(out, newInsight(TypePhotoMilestone, ImportanceNotable,
			"Well Documented",
			fmt.Sprintf("%d photos over the trip — the album practically builds itself.", photos),
			"📷", nil))
	}

	if len(ictx.Clusters) >= 10 {
		out = append(out, newInsight(TypePlaceCountMilestone, ImportanceNotable,
			"Collector of Places",
			fmt.Sprintf("%d distinct places in one trip takes commitment.", len(ictx.Clusters)),
			"📍", nil))
	}

	return out
}

func detectSpecial(ictx Context) []Insight {
	var out []Insight

	if len(ictx.Clusters) >= 3 {
		first := ictx.Clusters[0]
		last := ictx.Clusters[len(ictx.Clusters)-1]
		if spatial.DistanceMeters(first.Center, last.Center) < fullCircleRadiusMeters {
			out = append(out, newInsight(TypeMemoryTrigger, ImportanceHighlight,
				"Full Circle",
				fmt.Sprintf("The trip ended within walking distance of where it began, at %s.", first.Name),
				"⭕", []core.PlaceCluster{first, last}))
		}
	}

	if ictx.DNA != nil {
		if ictx.DNA.ExplorationScore >= 80 {
			out = append(out, newInsight(TypeExplorerSpirit, ImportanceHighlight,
				"Explorer's Spirit",
				fmt.Sprintf("An exploration score of %d puts you firmly in pathfinder territory.", ictx.DNA.ExplorationScore),
				"🧭", nil))
		}
		if ictx.DNA.CultureScore >= 80 {
			out = append(out, newInsight(TypeCultureLover, ImportanceHighlight,
				"Culture Lover",
				fmt.Sprintf("A culture score of %d — museums and temples clearly had your attention.", ictx.DNA.CultureScore),
				"🏛️", nil))
		}
	}

	return out
}

// Summarize produces the one-paragraph textual summary of a discovery run.
func Summarize(insights []Insight) string {
	if len(insights) == 0 {
		return "No standout patterns surfaced on this trip — sometimes the quiet ones are the best."
	}

	counts := make(map[Category]int)
	for _, in := range insights {
		counts[in.Category]++
	}
	top := insights[0]
	return fmt.Sprintf(
		"Discovered %d insight(s) across %d area(s). The headline: %s — %s",
		len(insights), len(counts), top.Title, top.Description)
}
