package dna

// Archetype is one of the nine fixed traveler types.
type Archetype string

const (
	ArchetypeAdventurer    Archetype = "adventurer"
	ArchetypeFoodie        Archetype = "foodie"
	ArchetypeNatureLover   Archetype = "nature_lover"
	ArchetypeCultureSeeker Archetype = "culture_seeker"
	ArchetypeRelaxer       Archetype = "relaxer"
	ArchetypeSocialite     Archetype = "socialite"
	ArchetypePhotographer  Archetype = "photographer"
	ArchetypePlanner       Archetype = "planner"
	ArchetypeExplorer      Archetype = "explorer"
)

// AllArchetypes lists the archetypes in declaration order. Ties in the score
// table resolve to the earlier entry.
var AllArchetypes = []Archetype{
	ArchetypeAdventurer, ArchetypeFoodie, ArchetypeNatureLover,
	ArchetypeCultureSeeker, ArchetypeRelaxer, ArchetypeSocialite,
	ArchetypePhotographer, ArchetypePlanner, ArchetypeExplorer,
}

var archetypeDisplayName = map[Archetype]string{
	ArchetypeAdventurer:    "Adventurer",
	ArchetypeFoodie:        "Foodie",
	ArchetypeNatureLover:   "Nature Lover",
	ArchetypeCultureSeeker: "Culture Seeker",
	ArchetypeRelaxer:       "Relaxer",
	ArchetypeSocialite:     "Socialite",
	ArchetypePhotographer:  "Photographer",
	ArchetypePlanner:       "Planner",
	ArchetypeExplorer:      "Explorer",
}

var archetypeEmoji = map[Archetype]string{
	ArchetypeAdventurer:    "🧗",
	ArchetypeFoodie:        "🍜",
	ArchetypeNatureLover:   "🌿",
	ArchetypeCultureSeeker: "🏛️",
	ArchetypeRelaxer:       "🌴",
	ArchetypeSocialite:     "🎉",
	ArchetypePhotographer:  "📷",
	ArchetypePlanner:       "🗓️",
	ArchetypeExplorer:      "🧭",
}

var archetypeCode = map[Archetype]string{
	ArchetypeAdventurer:    "AD",
	ArchetypeFoodie:        "FD",
	ArchetypeNatureLover:   "NL",
	ArchetypeCultureSeeker: "CS",
	ArchetypeRelaxer:       "RX",
	ArchetypeSocialite:     "SC",
	ArchetypePhotographer:  "PH",
	ArchetypePlanner:       "PL",
	ArchetypeExplorer:      "EX",
}

var archetypeDescription = map[Archetype]string{
	ArchetypeAdventurer:    "Chases summits, trails and the road less traveled.",
	ArchetypeFoodie:        "Plans the day around what's on the table.",
	ArchetypeNatureLover:   "Happiest among trees, water and open sky.",
	ArchetypeCultureSeeker: "Drawn to museums, temples and old stones.",
	ArchetypeRelaxer:       "Travels to slow down, not to speed up.",
	ArchetypeSocialite:     "The trip is the people in it.",
	ArchetypePhotographer:  "Sees every stop through a viewfinder.",
	ArchetypePlanner:       "Up early, itinerary in hand.",
	ArchetypeExplorer:      "Collects new places the way others collect souvenirs.",
}

// DisplayName returns the human-readable archetype name.
func (a Archetype) DisplayName() string {
	return archetypeDisplayName[a]
}

// Emoji returns the archetype's emoji.
func (a Archetype) Emoji() string {
	return archetypeEmoji[a]
}

// Code returns the two-letter code used in the DNA string.
func (a Archetype) Code() string {
	return archetypeCode[a]
}

// Description returns a one-line description of the archetype.
func (a Archetype) Description() string {
	return archetypeDescription[a]
}

// PacingStyle is the five-level pace classification derived from mean places
// per calendar day.
type PacingStyle string

const (
	PacingLeisurely PacingStyle = "leisurely"
	PacingRelaxed   PacingStyle = "relaxed"
	PacingBalanced  PacingStyle = "balanced"
	PacingEnergetic PacingStyle = "energetic"
	PacingWhirlwind PacingStyle = "whirlwind"
)

var pacingDisplayName = map[PacingStyle]string{
	PacingLeisurely: "Leisurely",
	PacingRelaxed:   "Relaxed",
	PacingBalanced:  "Balanced",
	PacingEnergetic: "Energetic",
	PacingWhirlwind: "Whirlwind",
}

// DisplayName returns the human-readable pacing label.
func (p PacingStyle) DisplayName() string {
	return pacingDisplayName[p]
}

// pacingOf buckets mean places-per-day into the five fixed bands.
func pacingOf(placesPerDay float64) PacingStyle {
	switch {
	case placesPerDay < 1.5:
		return PacingLeisurely
	case placesPerDay < 2.5:
		return PacingRelaxed
	case placesPerDay < 4.0:
		return PacingBalanced
	case placesPerDay < 6.0:
		return PacingEnergetic
	default:
		return PacingWhirlwind
	}
}
