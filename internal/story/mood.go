package story

import (
	"tripweaver/internal/core"
	"tripweaver/internal/dna"
)

// Mood gates which template pool every story section draws from.
type Mood string

const (
	MoodRomantic    Mood = "romantic"
	MoodAdventurous Mood = "adventurous"
	MoodPeaceful    Mood = "peaceful"
	MoodEnergetic   Mood = "energetic"
	MoodNostalgic   Mood = "nostalgic"
	MoodJoyful      Mood = "joyful"
	MoodReflective  Mood = "reflective"
)

var archetypeMood = map[dna.Archetype]Mood{
	dna.ArchetypeAdventurer:    MoodAdventurous,
	dna.ArchetypeFoodie:        MoodJoyful,
	dna.ArchetypeNatureLover:   MoodPeaceful,
	dna.ArchetypeCultureSeeker: MoodNostalgic,
	dna.ArchetypeRelaxer:       MoodPeaceful,
	dna.ArchetypeSocialite:     MoodEnergetic,
	dna.ArchetypePhotographer:  MoodRomantic,
	dna.ArchetypePlanner:       MoodEnergetic,
	dna.ArchetypeExplorer:      MoodAdventurous,
}

var activityMood = map[core.ActivityType]Mood{
	core.ActivityBeach:      MoodPeaceful,
	core.ActivityNature:     MoodPeaceful,
	core.ActivityMountain:   MoodAdventurous,
	core.ActivityTourist:    MoodAdventurous,
	core.ActivityCulture:    MoodNostalgic,
	core.ActivityCafe:       MoodJoyful,
	core.ActivityRestaurant: MoodJoyful,
	core.ActivityShopping:   MoodEnergetic,
}

// selectMood picks the story mood. The DNA archetype takes priority; without a
// profile the dominant activity type decides, and everything else falls back
// to reflective.
func selectMood(clusters []core.PlaceCluster, profile *dna.TravelDNA) Mood {
	if profile != nil {
		if mood, ok := archetypeMood[profile.Primary]; ok {
			return mood
		}
	}

	counts := make(map[core.ActivityType]int)
	for _, cluster := range clusters {
		counts[cluster.Activity]++
	}
	best := core.ActivityOther
	bestCount := 0
	for _, activity := range core.AllActivityTypes {
		if counts[activity] > bestCount {
			best = activity
			bestCount = counts[activity]
		}
	}
	if mood, ok := activityMood[best]; ok {
		return mood
	}
	return MoodReflective
}
