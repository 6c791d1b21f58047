package story

// Template pools per mood. Every entry is a complete sentence (or title) with
// printf verbs for its interpolated values. Selection among entries is
// randomized per call for variety; the set of valid outputs per mood is fixed,
// so tests assert membership rather than equality.

// titleTemplates interpolate the trip title.
var titleTemplates = map[Mood][]string{
	MoodRomantic: {
		"%s, in Soft Light",
		"A Love Letter to %s",
		"%s, Frame by Frame",
	},
	MoodAdventurous: {
		"Chasing Horizons: %s",
		"%s, Off the Map",
		"The %s Expedition",
	},
	MoodPeaceful: {
		"Slow Days in %s",
		"%s, Unhurried",
		"Breathing Room: %s",
	},
	MoodEnergetic: {
		"%s at Full Speed",
		"Nonstop %s",
		"%s, Turned Up",
	},
	MoodNostalgic: {
		"Postcards from %s",
		"%s, Remembered",
		"Echoes of %s",
	},
	MoodJoyful: {
		"The Bright Side of %s",
		"%s, One Delight at a Time",
		"Savoring %s",
	},
	MoodReflective: {
		"Notes from %s",
		"%s, Looking Back",
		"What %s Left Behind",
	},
}

// openingTemplates interpolate day count and the first place's name.
var openingTemplates = map[Mood][]string{
	MoodRomantic: {
		"For %d days the light kept finding us, starting the moment we arrived at %s.",
		"Some trips feel like a slow dance; this one began at %s and lasted %d beautiful days.",
	},
	MoodAdventurous: {
		"%d days, one rule: keep moving. It all kicked off at %s.",
		"The itinerary said %d days; the first steps at %s said this would be something bigger.",
	},
	MoodPeaceful: {
		"We gave ourselves %d days to slow down, and %s set the tone from the start.",
		"It began quietly at %s, the first of %d unhurried days.",
	},
	MoodEnergetic: {
		"%d days were never going to be enough, so we hit the ground running at %s.",
		"From the first minutes at %s, all %d days ran at double speed.",
	},
	MoodNostalgic: {
		"Looking back on those %d days, everything still begins at %s.",
		"It started at %s, the way the best memories do, and filled %d days to the brim.",
	},
	MoodJoyful: {
		"%d days of small delights, opening with %s.",
		"The smiles started at %s and didn't let up for %d days.",
	},
	MoodReflective: {
		"Over %d days, a trip became a story. The first page was written at %s.",
		"It is strange what stays with you; from %d days, the arrival at %s stays most.",
	},
}

// closingTemplates interpolate the trip day count.
var closingTemplates = map[Mood][]string{
	MoodRomantic: {
		"After %d days we packed the photographs, but kept the feeling.",
		"%d days later, the light is different at home too.",
	},
	MoodAdventurous: {
		"%d days on, the boots are muddy and the list of next destinations is longer.",
		"The trail ended after %d days; the appetite for it did not.",
	},
	MoodPeaceful: {
		"%d days of stillness don't end, they just get quieter.",
		"We came home after %d days breathing more slowly than we left.",
	},
	MoodEnergetic: {
		"%d days at that pace and we still didn't want it to stop.",
		"The legs gave out before the enthusiasm did; %d days well spent.",
	},
	MoodNostalgic: {
		"%d days became an album, and the album became this story.",
		"Even now, %d days of moments keep surfacing at odd hours.",
	},
	MoodJoyful: {
		"%d days, and every one of them earned its place in the highlight reel.",
		"We counted %d days; we lost count of the laughs.",
	},
	MoodReflective: {
		"%d days is not long, but it was long enough to change the way home looks.",
		"What remains after %d days is not the distance covered, but the attention paid.",
	},
}

// taglineTemplates take no interpolated values.
var taglineTemplates = map[Mood][]string{
	MoodRomantic:    {"Every frame a keepsake.", "Lit from within."},
	MoodAdventurous: {"The map was only a suggestion.", "Farther is better."},
	MoodPeaceful:    {"Nowhere to be, everywhere to notice.", "Slow is a destination."},
	MoodEnergetic:   {"Sleep is for the flight home.", "All gas, no brakes."},
	MoodNostalgic:   {"Already missing it.", "Some places never leave you."},
	MoodJoyful:      {"Collect moments, not things.", "Happiness, itemized."},
	MoodReflective:  {"The quiet parts were the loudest.", "Travel is how we pay attention."},
}
