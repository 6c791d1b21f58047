package scoring

import (
	"fmt"

	"tripweaver/internal/core"
)

// Component caps. The total is additionally capped at 100.
const (
	maxTimeScore       = 20
	maxPlaceScore      = 20
	maxActivityScore   = 20
	maxDurationScore   = 15
	maxPhotoScore      = 15
	maxUniquenessScore = 10
	maxTotalScore      = 100
)

// Components holds the six named sub-scores of a moment.
type Components struct {
	Time       int `json:"time"`       // 0-20, hour-of-day step function
	Place      int `json:"place"`      // 0-20, scene quality plus hotspot density
	Activity   int `json:"activity"`   // 0-20, activity type plus scene agreement
	Duration   int `json:"duration"`   // 0-15, dwell minutes
	Photo      int `json:"photo"`      // 0-15, photo volume
	Uniqueness int `json:"uniqueness"` // 0-10, rarity of the activity within the trip
}

// Sum adds the six components without capping.
func (c Components) Sum() int {
	return c.Time + c.Place + c.Activity + c.Duration + c.Photo + c.Uniqueness
}

// MomentScore is the immutable 0-100 specialness rating of one cluster.
type MomentScore struct {
	ClusterID  string     `json:"cluster_id"`
	Total      int        `json:"total"` // min(100, sum of components)
	Grade      Grade      `json:"grade"`
	Components Components `json:"components"`
	Highlights []string   `json:"highlights"`
	Badges     []Badge    `json:"badges"`
}

// CalculateScore computes the moment score for one cluster. scene may be
// SceneUnknown and hotspots may be empty; allClusters is the full ordered trip
// used for uniqueness and positional badges. The function is pure and
// deterministic with no failure mode.
func CalculateScore(cluster core.PlaceCluster, scene core.SceneCategory, hotspots core.NearbyHotspots, allClusters []core.PlaceCluster) MomentScore {
	components := Components{
		Time:       timeScore(cluster.StartHour()),
		Place:      placeScore(scene, hotspots),
		Activity:   activityScore(cluster.Activity, scene),
		Duration:   durationScore(cluster),
		Photo:      photoScore(cluster.PhotoCount()),
		Uniqueness: uniquenessScore(cluster, allClusters),
	}

	total := components.Sum()
	if total > maxTotalScore {
		total = maxTotalScore
	}

	return MomentScore{
		ClusterID:  cluster.ID,
		Total:      total,
		Grade:      GradeOf(total),
		Components: components,
		Highlights: highlights(components),
		Badges:     badges(cluster, components, allClusters),
	}
}

// timeScore favors golden-hour windows at dawn and dusk.
func timeScore(hour int) int {
	switch {
	case hour >= 5 && hour <= 7:
		return 20
	case hour >= 17 && hour <= 19:
		return 20
	case hour >= 8 && hour <= 10:
		return 15
	case hour >= 20 && hour <= 22:
		return 15
	case hour >= 11 && hour <= 16:
		return 10
	default:
		return 5
	}
}

var sceneBonus = map[core.SceneCategory]int{
	core.SceneBeach:      8,
	core.SceneMountain:   8,
	core.SceneLandmark:   8,
	core.SceneMuseum:     6,
	core.SceneTemple:     6,
	core.ScenePark:       5,
	core.SceneNature:     5,
	core.SceneCafe:       3,
	core.SceneRestaurant: 3,
}

func placeScore(scene core.SceneCategory, hotspots core.NearbyHotspots) int {
	score := 10 + sceneBonus[scene]

	density := hotspots.Total()
	if density > 5 {
		density = 5
	}
	score += density

	if score > maxPlaceScore {
		score = maxPlaceScore
	}
	return score
}

var activityBonus = map[core.ActivityType]int{
	core.ActivityBeach:      8,
	core.ActivityMountain:   8,
	core.ActivityCulture:    6,
	core.ActivityTourist:    5,
	core.ActivityCafe:       3,
	core.ActivityRestaurant: 3,
}

func activityScore(activity core.ActivityType, scene core.SceneCategory) int {
	score := 10 + activityBonus[activity]

	// Agreement between what the photos show and what the cluster claims.
	if mapped, ok := scene.ActivityType(); ok && mapped == activity {
		score += 2
	}

	if score > maxActivityScore {
		score = maxActivityScore
	}
	return score
}

func durationScore(cluster core.PlaceCluster) int {
	dwell, ok := cluster.Duration()
	if !ok {
		return 5
	}
	minutes := int(dwell.Minutes())
	switch {
	case minutes >= 60:
		return 15
	case minutes >= 30:
		return 12
	case minutes >= 15:
		return 8
	default:
		return 5
	}
}

func photoScore(count int) int {
	switch {
	case count >= 20:
		return 15
	case count >= 10:
		return 12
	case count >= 5:
		return 8
	case count >= 2:
		return 5
	default:
		return 3
	}
}

// uniquenessScore is inversely proportional to how many clusters in the trip
// share this cluster's activity type (the cluster itself included).
func uniquenessScore(cluster core.PlaceCluster, allClusters []core.PlaceCluster) int {
	shared := 0
	for _, other := range allClusters {
		if other.Activity == cluster.Activity {
			shared++
		}
	}
	switch {
	case shared <= 1:
		return 10
	case shared <= 2:
		return 7
	case shared <= 3:
		return 4
	default:
		return 2
	}
}

func highlights(c Components) []string {
	var out []string
	if c.Time >= 18 {
		out = append(out, "Visited during golden hour")
	}
	if c.Place >= 18 {
		out = append(out, "A setting worth the detour")
	}
	if c.Activity >= 18 {
		out = append(out, "Exactly the right thing to do there")
	}
	if c.Duration >= 15 {
		out = append(out, "Took the time to soak it in")
	}
	if c.Photo >= 15 {
		out = append(out, "A camera-roll favorite")
	}
	if c.Uniqueness >= 10 {
		out = append(out, "One of a kind on this trip")
	}
	return out
}

func badges(cluster core.PlaceCluster, c Components, allClusters []core.PlaceCluster) []Badge {
	var out []Badge

	hour := cluster.StartHour()
	switch {
	case (hour >= 5 && hour <= 7) || (hour >= 17 && hour <= 19):
		out = append(out, BadgeGoldenHour)
	case hour >= 20 || hour < 5:
		out = append(out, BadgeNightOwl)
	case hour >= 8 && hour <= 10:
		out = append(out, BadgeEarlyBird)
	}

	if c.Duration >= maxDurationScore {
		out = append(out, BadgeLongStay)
	}
	if c.Photo >= maxPhotoScore {
		out = append(out, BadgePhotoSpot)
	}
	if c.Uniqueness >= maxUniquenessScore {
		out = append(out, BadgeHiddenGem)
	}

	if len(allClusters) > 0 {
		if allClusters[0].ID == cluster.ID {
			out = append(out, BadgeTripStart)
		}
		if allClusters[len(allClusters)-1].ID == cluster.ID {
			out = append(out, BadgeTripFinale)
		}
	}
	return out
}

// TripOverallScore aggregates every moment score of a trip.
type TripOverallScore struct {
	AverageScore float64 `json:"average_score"`
	PeakScore    int     `json:"peak_score"`
	TotalBadges  int     `json:"total_badges"`
	TripGrade    Grade   `json:"trip_grade"`
	Summary      string  `json:"summary"`
}

// CalculateTripScore reduces all moment scores into one trip-level score.
// Empty input yields a defined zero "casual" result, never an error.
func CalculateTripScore(moments []MomentScore) TripOverallScore {
	if len(moments) == 0 {
		return TripOverallScore{
			TripGrade: GradeCasual,
			Summary:   "A quiet trip with no scored moments yet.",
		}
	}

	var sum, peak, badgeCount, legendary, epic int
	for _, m := range moments {
		sum += m.Total
		if m.Total > peak {
			peak = m.Total
		}
		badgeCount += len(m.Badges)
		switch m.Grade {
		case GradeLegendary:
			legendary++
		case GradeEpic:
			epic++
		}
	}

	average := float64(sum) / float64(len(moments))

	return TripOverallScore{
		AverageScore: average,
		PeakScore:    peak,
		TotalBadges:  badgeCount,
		TripGrade:    GradeOf(int(average)),
		Summary:      tripSummary(average, legendary, epic),
	}
}

func tripSummary(average float64, legendary, epic int) string {
	switch {
	case legendary > 0:
		return fmt.Sprintf("A trip for the books: %d legendary moment(s).", legendary)
	case epic > 0:
		return fmt.Sprintf("An impressive run with %d epic moment(s).", epic)
	default:
		return fmt.Sprintf("A solid trip averaging %.0f points per place.", average)
	}
}
