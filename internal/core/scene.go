package core

// SceneCategory is the closed set of scene classes the vision adapter maps
// classifier labels into. Unknown is a valid terminal value, never an error.
type SceneCategory string

const (
	SceneCafe       SceneCategory = "cafe"
	SceneRestaurant SceneCategory = "restaurant"
	SceneBeach      SceneCategory = "beach"
	SceneMountain   SceneCategory = "mountain"
	ScenePark       SceneCategory = "park"
	SceneMuseum     SceneCategory = "museum"
	SceneShopping   SceneCategory = "shopping"
	SceneAirport    SceneCategory = "airport"
	SceneHotel      SceneCategory = "hotel"
	SceneTemple     SceneCategory = "temple"
	SceneCity       SceneCategory = "city"
	SceneNature     SceneCategory = "nature"
	SceneFood       SceneCategory = "food"
	ScenePeople     SceneCategory = "people"
	SceneLandmark   SceneCategory = "landmark"
	SceneUnknown    SceneCategory = "unknown"
)

// AllSceneCategories lists every category in declaration order.
var AllSceneCategories = []SceneCategory{
	SceneCafe, SceneRestaurant, SceneBeach, SceneMountain, ScenePark,
	SceneMuseum, SceneShopping, SceneAirport, SceneHotel, SceneTemple,
	SceneCity, SceneNature, SceneFood, ScenePeople, SceneLandmark,
	SceneUnknown,
}

var sceneEmoji = map[SceneCategory]string{
	SceneCafe:       "☕",
	SceneRestaurant: "🍽️",
	SceneBeach:      "🏖️",
	SceneMountain:   "⛰️",
	ScenePark:       "🌳",
	SceneMuseum:     "🏛️",
	SceneShopping:   "🛍️",
	SceneAirport:    "✈️",
	SceneHotel:      "🏨",
	SceneTemple:     "⛩️",
	SceneCity:       "🏙️",
	SceneNature:     "🌿",
	SceneFood:       "🍜",
	ScenePeople:     "👥",
	SceneLandmark:   "🗼",
	SceneUnknown:    "📍",
}

var sceneDisplayName = map[SceneCategory]string{
	SceneCafe:       "Cafe",
	SceneRestaurant: "Restaurant",
	SceneBeach:      "Beach",
	SceneMountain:   "Mountain",
	ScenePark:       "Park",
	SceneMuseum:     "Museum",
	SceneShopping:   "Shopping",
	SceneAirport:    "Airport",
	SceneHotel:      "Hotel",
	SceneTemple:     "Temple",
	SceneCity:       "City",
	SceneNature:     "Nature",
	SceneFood:       "Food",
	ScenePeople:     "People",
	SceneLandmark:   "Landmark",
	SceneUnknown:    "Unknown",
}

// Emoji returns the emoji for the category, falling back to the unknown marker.
func (s SceneCategory) Emoji() string {
	if e, ok := sceneEmoji[s]; ok {
		return e
	}
	return sceneEmoji[SceneUnknown]
}

// DisplayName returns a human-readable name for the category.
func (s SceneCategory) DisplayName() string {
	if n, ok := sceneDisplayName[s]; ok {
		return n
	}
	return sceneDisplayName[SceneUnknown]
}

var sceneToActivity = map[SceneCategory]ActivityType{
	SceneCafe:       ActivityCafe,
	SceneRestaurant: ActivityRestaurant,
	SceneFood:       ActivityRestaurant,
	SceneBeach:      ActivityBeach,
	SceneMountain:   ActivityMountain,
	ScenePark:       ActivityNature,
	SceneNature:     ActivityNature,
	SceneMuseum:     ActivityCulture,
	SceneTemple:     ActivityCulture,
	SceneShopping:   ActivityShopping,
	SceneCity:       ActivityTourist,
	SceneLandmark:   ActivityTourist,
}

// ActivityType maps the scene to the activity type it most often indicates.
// ok is false for scenes (airport, hotel, people, unknown) that carry no
// activity signal.
func (s SceneCategory) ActivityType() (ActivityType, bool) {
	a, ok := sceneToActivity[s]
	return a, ok
}
