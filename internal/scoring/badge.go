package scoring

// Badge marks a specific qualifying condition on a moment.
type Badge string

const (
	BadgeGoldenHour  Badge = "golden_hour"  // Visit started in a golden-hour window
	BadgeNightOwl    Badge = "night_owl"    // Visit started at night
	BadgeEarlyBird   Badge = "early_bird"   // Visit started in the early morning
	BadgeLongStay    Badge = "long_stay"    // Dwelled an hour or more
	BadgePhotoSpot   Badge = "photo_spot"   // Twenty or more photos taken
	BadgeHiddenGem   Badge = "hidden_gem"   // Only visit of its activity type
	BadgeTripStart   Badge = "trip_start"   // Chronologically first place of the trip
	BadgeTripFinale  Badge = "trip_finale"  // Chronologically last place of the trip
)

var badgeDisplayName = map[Badge]string{
	BadgeGoldenHour: "Golden Hour",
	BadgeNightOwl:   "Night Owl",
	BadgeEarlyBird:  "Early Bird",
	BadgeLongStay:   "Slow Burner",
	BadgePhotoSpot:  "Photo Spot",
	BadgeHiddenGem:  "Hidden Gem",
	BadgeTripStart:  "The Beginning",
	BadgeTripFinale: "Grand Finale",
}

var badgeEmoji = map[Badge]string{
	BadgeGoldenHour: "🌅",
	BadgeNightOwl:   "🦉",
	BadgeEarlyBird:  "🐦",
	BadgeLongStay:   "⏳",
	BadgePhotoSpot:  "📸",
	BadgeHiddenGem:  "💎",
	BadgeTripStart:  "🚩",
	BadgeTripFinale: "🏁",
}

// DisplayName returns the badge's human-readable name.
func (b Badge) DisplayName() string {
	return badgeDisplayName[b]
}

// Emoji returns the badge's emoji.
func (b Badge) Emoji() string {
	return badgeEmoji[b]
}
