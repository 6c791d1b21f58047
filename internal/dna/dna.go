package dna

import (
	"sort"
	"strings"

	"tripweaver/internal/core"
)

// TimePreference splits the traveler's activity across three day periods as
// photo-weighted percentages. The three values always sum to 100.
type TimePreference struct {
	Morning   int `json:"morning"`   // 05:00-11:59
	Afternoon int `json:"afternoon"` // 12:00-17:59
	Evening   int `json:"evening"`   // 18:00-04:59
}

// Dominant returns the name of the largest period and its percentage.
func (t TimePreference) Dominant() (string, int) {
	switch {
	case t.Morning >= t.Afternoon && t.Morning >= t.Evening:
		return "morning", t.Morning
	case t.Afternoon >= t.Evening:
		return "afternoon", t.Afternoon
	default:
		return "evening", t.Evening
	}
}

// ActivityBalance expresses what share of visited places fall on each axis.
// A place may count toward multiple axes, so the four values are independent
// 0-100 percentages rather than a partition.
type ActivityBalance struct {
	Outdoor  int `json:"outdoor"`
	Indoor   int `json:"indoor"`
	Active   int `json:"active"`
	Relaxing int `json:"relaxing"`
}

// Trait is one derived personality trait with a short code for the DNA string.
type Trait struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// TravelDNA is the traveler's personality profile for one trip.
type TravelDNA struct {
	Primary          Archetype       `json:"primary"`
	Secondary        Archetype       `json:"secondary,omitempty"` // empty when no second archetype scored
	Traits           []Trait         `json:"traits"`              // most significant first, at most five
	Balance          ActivityBalance `json:"balance"`
	Pacing           PacingStyle     `json:"pacing"`
	TimePreference   TimePreference  `json:"time_preference"`
	ExplorationScore int             `json:"exploration_score"` // 0-100
	SocialScore      int             `json:"social_score"`      // 0-100
	CultureScore     int             `json:"culture_score"`     // 0-100
	Code             string          `json:"code"`
}

// Analyze derives the travel DNA from the trip's clusters and the scene
// categories resolved for them (keyed by cluster ID; missing or unknown
// entries simply contribute no scene signal). The computation is pure and
// deterministic; an empty cluster list yields defined defaults, not an error.
func Analyze(clusters []core.PlaceCluster, scenes map[string]core.SceneCategory) TravelDNA {
	if len(clusters) == 0 {
		return defaultDNA()
	}

	tally := tallyActivities(clusters, scenes)
	timePref := timePreference(clusters)
	pacing := pacingOf(placesPerDay(clusters))
	balance := activityBalance(clusters)
	primary, secondary := topArchetypes(archetypeScores(clusters, tally, timePref, pacing))
	traits := deriveTraits(clusters, timePref, pacing, balance)

	d := TravelDNA{
		Primary:          primary,
		Secondary:        secondary,
		Traits:           traits,
		Balance:          balance,
		Pacing:           pacing,
		TimePreference:   timePref,
		ExplorationScore: explorationScore(clusters, tally),
		SocialScore:      socialScore(clusters, scenes),
		CultureScore:     cultureScore(clusters),
	}
	d.Code = dnaCode(d)
	return d
}

func defaultDNA() TravelDNA {
	d := TravelDNA{
		Primary:          ArchetypeExplorer,
		Pacing:           PacingBalanced,
		TimePreference:   TimePreference{Morning: 34, Afternoon: 33, Evening: 33},
		ExplorationScore: 50,
		SocialScore:      50,
		CultureScore:     30,
	}
	d.Code = dnaCode(d)
	return d
}

// tallyActivities counts activity occurrences across cluster labels and
// scene-derived activity types.
func tallyActivities(clusters []core.PlaceCluster, scenes map[string]core.SceneCategory) map[core.ActivityType]int {
	tally := make(map[core.ActivityType]int)
	for _, cluster := range clusters {
		tally[cluster.Activity]++
		if scene, ok := scenes[cluster.ID]; ok {
			if mapped, ok := scene.ActivityType(); ok {
				tally[mapped]++
			}
		}
	}
	return tally
}

// timePreference computes photo-weighted morning/afternoon/evening shares that
// always sum to exactly 100.
func timePreference(clusters []core.PlaceCluster) TimePreference {
	var morning, afternoon, evening int
	for _, cluster := range clusters {
		weight := cluster.PhotoCount()
		if weight == 0 {
			weight = 1
		}
		switch hour := cluster.StartHour(); {
		case hour >= 5 && hour < 12:
			morning += weight
		case hour >= 12 && hour < 18:
			afternoon += weight
		default:
			evening += weight
		}
	}

	total := morning + afternoon + evening
	if total < 1 {
		total = 1
	}
	pref := TimePreference{
		Morning:   morning * 100 / total,
		Afternoon: afternoon * 100 / total,
	}
	// Evening absorbs rounding so the three shares sum to 100.
	pref.Evening = 100 - pref.Morning - pref.Afternoon
	return pref
}

func placesPerDay(clusters []core.PlaceCluster) float64 {
	days := make(map[string]bool)
	for _, cluster := range clusters {
		days[cluster.StartTime.Format("2006-01-02")] = true
	}
	if len(days) == 0 {
		return 0
	}
	return float64(len(clusters)) / float64(len(days))
}

func activityBalance(clusters []core.PlaceCluster) ActivityBalance {
	var outdoor, indoor, active, relaxing int
	for _, cluster := range clusters {
		if cluster.Activity.IsOutdoor() {
			outdoor++
		}
		if cluster.Activity.IsIndoor() {
			indoor++
		}
		if cluster.Activity.IsActive() {
			active++
		}
		if cluster.Activity.IsRelaxing() {
			relaxing++
		}
	}
	total := len(clusters)
	if total == 0 {
		return ActivityBalance{}
	}
	return ActivityBalance{
		Outdoor:  outdoor * 100 / total,
		Indoor:   indoor * 100 / total,
		Active:   active * 100 / total,
		Relaxing: relaxing * 100 / total,
	}
}

// archetypeWeights awards points per occurrence of an activity type.
// Nature and adventure signals weigh double.
var archetypeWeights = map[core.ActivityType]map[Archetype]int{
	core.ActivityBeach:      {ArchetypeNatureLover: 2, ArchetypeRelaxer: 1},
	core.ActivityMountain:   {ArchetypeAdventurer: 2, ArchetypeNatureLover: 2},
	core.ActivityNature:     {ArchetypeNatureLover: 2, ArchetypeRelaxer: 1},
	core.ActivityCulture:    {ArchetypeCultureSeeker: 2, ArchetypeExplorer: 1},
	core.ActivityTourist:    {ArchetypeExplorer: 2, ArchetypePhotographer: 1},
	core.ActivityRestaurant: {ArchetypeFoodie: 2},
	core.ActivityCafe:       {ArchetypeFoodie: 1, ArchetypeRelaxer: 1},
	core.ActivityShopping:   {ArchetypeSocialite: 1, ArchetypeExplorer: 1},
}

func archetypeScores(clusters []core.PlaceCluster, tally map[core.ActivityType]int, timePref TimePreference, pacing PacingStyle) map[Archetype]int {
	scores := make(map[Archetype]int)

	for activity, count := range tally {
		for archetype, weight := range archetypeWeights[activity] {
			scores[archetype] += weight * count
		}
	}

	switch pacing {
	case PacingLeisurely, PacingRelaxed:
		scores[ArchetypeRelaxer] += 3
	case PacingEnergetic, PacingWhirlwind:
		scores[ArchetypePlanner] += 2
		scores[ArchetypeAdventurer] += 2
	}

	if period, share := timePref.Dominant(); share > 40 {
		switch period {
		case "morning":
			scores[ArchetypePlanner] += 2
		case "evening":
			scores[ArchetypeSocialite] += 2
		}
	}

	if meanPhotosPerPlace(clusters) > 10 {
		scores[ArchetypePhotographer] += 3
	}
	return scores
}

// topArchetypes picks the two highest-scoring archetypes. Ties resolve to the
// earlier archetype in declaration order; secondary is empty when nothing else
// scored.
func topArchetypes(scores map[Archetype]int) (Archetype, Archetype) {
	ranked := make([]Archetype, len(AllArchetypes))
	copy(ranked, AllArchetypes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	primary := ranked[0]
	if scores[primary] == 0 {
		return ArchetypeExplorer, ""
	}
	secondary := ranked[1]
	if scores[secondary] == 0 {
		return primary, ""
	}
	return primary, secondary
}

func meanPhotosPerPlace(clusters []core.PlaceCluster) float64 {
	if len(clusters) == 0 {
		return 0
	}
	total := 0
	for _, cluster := range clusters {
		total += cluster.PhotoCount()
	}
	return float64(total) / float64(len(clusters))
}

// deriveTraits evaluates the fixed trait rules in significance order, keeping
// at most five.
func deriveTraits(clusters []core.PlaceCluster, timePref TimePreference, pacing PacingStyle, balance ActivityBalance) []Trait {
	var traits []Trait

	if period, share := timePref.Dominant(); share > 60 {
		switch period {
		case "morning":
			traits = append(traits, Trait{Name: "Early Bird", Code: "EB"})
		case "afternoon":
			traits = append(traits, Trait{Name: "Midday Mover", Code: "MM"})
		case "evening":
			traits = append(traits, Trait{Name: "Night Owl", Code: "NO"})
		}
	}

	switch pacing {
	case PacingEnergetic, PacingWhirlwind:
		traits = append(traits, Trait{Name: "Fast-Paced", Code: "FP"})
	case PacingLeisurely, PacingRelaxed:
		traits = append(traits, Trait{Name: "Slow Traveler", Code: "ST"})
	}

	if balance.Outdoor > 60 {
		traits = append(traits, Trait{Name: "Outdoor Spirit", Code: "OS"})
	}
	if meanPhotosPerPlace(clusters) > 10 {
		traits = append(traits, Trait{Name: "Shutterbug", Code: "SB"})
	}
	if len(clusters) >= 5 {
		traits = append(traits, Trait{Name: "Serial Explorer", Code: "SE"})
	}

	if len(traits) > 5 {
		traits = traits[:5]
	}
	return traits
}

// explorationScore rewards activity diversity and place count, each half
// capped at 50.
func explorationScore(clusters []core.PlaceCluster, tally map[core.ActivityType]int) int {
	diversity := len(tally) * 15
	if diversity > 50 {
		diversity = 50
	}
	places := len(clusters) * 5
	if places > 50 {
		places = 50
	}
	return diversity + places
}

// socialScore starts at 50 and grows with people scenes and food stops.
func socialScore(clusters []core.PlaceCluster, scenes map[string]core.SceneCategory) int {
	score := 50
	for _, cluster := range clusters {
		if scenes[cluster.ID] == core.ScenePeople {
			score += 10
		}
		if cluster.Activity == core.ActivityRestaurant || cluster.Activity == core.ActivityCafe {
			score += 5
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// cultureScore starts at 30 and grows with culture and tourist visits.
func cultureScore(clusters []core.PlaceCluster) int {
	score := 30
	for _, cluster := range clusters {
		switch cluster.Activity {
		case core.ActivityCulture:
			score += 20
		case core.ActivityTourist:
			score += 10
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// dnaCode builds the short code string, e.g. "FD-RX-EB".
func dnaCode(d TravelDNA) string {
	parts := []string{d.Primary.Code()}
	if d.Secondary != "" {
		parts = append(parts, d.Secondary.Code())
	}
	if len(d.Traits) > 0 {
		parts = append(parts, d.Traits[0].Code)
	}
	return strings.Join(parts, "-")
}
