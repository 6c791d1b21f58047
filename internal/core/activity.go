package core

// ActivityType is the closed set of activity classifications assigned to
// clusters by the upstream clustering stage.
type ActivityType string

const (
	ActivityCafe       ActivityType = "cafe"
	ActivityRestaurant ActivityType = "restaurant"
	ActivityBeach      ActivityType = "beach"
	ActivityMountain   ActivityType = "mountain"
	ActivityCulture    ActivityType = "culture"
	ActivityTourist    ActivityType = "tourist"
	ActivityShopping   ActivityType = "shopping"
	ActivityNature     ActivityType = "nature"
	ActivityOther      ActivityType = "other"
)

// AllActivityTypes lists every activity type in declaration order.
var AllActivityTypes = []ActivityType{
	ActivityCafe, ActivityRestaurant, ActivityBeach, ActivityMountain,
	ActivityCulture, ActivityTourist, ActivityShopping, ActivityNature,
	ActivityOther,
}

var activityDisplayName = map[ActivityType]string{
	ActivityCafe:       "Cafe Break",
	ActivityRestaurant: "Dining",
	ActivityBeach:      "Beach Time",
	ActivityMountain:   "Mountain Hike",
	ActivityCulture:    "Cultural Visit",
	ActivityTourist:    "Sightseeing",
	ActivityShopping:   "Shopping",
	ActivityNature:     "Nature Walk",
	ActivityOther:      "Stop",
}

var activityEmoji = map[ActivityType]string{
	ActivityCafe:       "☕",
	ActivityRestaurant: "🍽️",
	ActivityBeach:      "🏖️",
	ActivityMountain:   "🥾",
	ActivityCulture:    "🏛️",
	ActivityTourist:    "📸",
	ActivityShopping:   "🛍️",
	ActivityNature:     "🌲",
	ActivityOther:      "📍",
}

// DisplayName returns a human-readable label for the activity.
func (a ActivityType) DisplayName() string {
	if n, ok := activityDisplayName[a]; ok {
		return n
	}
	return activityDisplayName[ActivityOther]
}

// Emoji returns the emoji for the activity.
func (a ActivityType) Emoji() string {
	if e, ok := activityEmoji[a]; ok {
		return e
	}
	return activityEmoji[ActivityOther]
}

// Axis membership used by the travel DNA activity balance. A type may belong
// to more than one axis.
var (
	outdoorActivities  = map[ActivityType]bool{ActivityBeach: true, ActivityMountain: true, ActivityNature: true, ActivityTourist: true}
	indoorActivities   = map[ActivityType]bool{ActivityCafe: true, ActivityRestaurant: true, ActivityCulture: true, ActivityShopping: true}
	activeActivities   = map[ActivityType]bool{ActivityMountain: true, ActivityTourist: true, ActivityShopping: true}
	relaxingActivities = map[ActivityType]bool{ActivityCafe: true, ActivityBeach: true, ActivityNature: true}
)

// IsOutdoor reports whether the activity counts toward the outdoor axis.
func (a ActivityType) IsOutdoor() bool { return outdoorActivities[a] }

// IsIndoor reports whether the activity counts toward the indoor axis.
func (a ActivityType) IsIndoor() bool { return indoorActivities[a] }

// IsActive reports whether the activity counts toward the active axis.
func (a ActivityType) IsActive() bool { return activeActivities[a] }

// IsRelaxing reports whether the activity counts toward the relaxing axis.
func (a ActivityType) IsRelaxing() bool { return relaxingActivities[a] }
