package scene

import (
	"sort"
	"strings"

	"tripweaver/internal/core"
)

// labelCategory maps raw classifier labels to scene categories. The table is
// immutable and loaded once at process start; labels missing from it resolve
// to SceneUnknown rather than failing the run.
var labelCategory = map[string]core.SceneCategory{
	// Food and drink
	"cafe":         core.SceneCafe,
	"coffee shop":  core.SceneCafe,
	"coffeehouse":  core.SceneCafe,
	"espresso":     core.SceneCafe,
	"bakery":       core.SceneCafe,
	"restaurant":   core.SceneRestaurant,
	"bar":          core.SceneRestaurant,
	"pub":          core.SceneRestaurant,
	"diner":        core.SceneRestaurant,
	"food":         core.SceneFood,
	"dish":         core.SceneFood,
	"meal":         core.SceneFood,
	"noodle":       core.SceneFood,
	"dessert":      core.SceneFood,
	"street food":  core.SceneFood,

	// Outdoors
	"beach":     core.SceneBeach,
	"coast":     core.SceneBeach,
	"seashore":  core.SceneBeach,
	"ocean":     core.SceneBeach,
	"mountain":  core.SceneMountain,
	"peak":      core.SceneMountain,
	"ridge":     core.SceneMountain,
	"valley":    core.SceneMountain,
	"cliff":     core.SceneMountain,
	"park":      core.ScenePark,
	"garden":    core.ScenePark,
	"botanical": core.ScenePark,
	"forest":    core.SceneNature,
	"lake":      core.SceneNature,
	"river":     core.SceneNature,
	"waterfall": core.SceneNature,
	"field":     core.SceneNature,

	// Culture and landmarks
	"museum":    core.SceneMuseum,
	"gallery":   core.SceneMuseum,
	"exhibit":   core.SceneMuseum,
	"temple":    core.SceneTemple,
	"shrine":    core.SceneTemple,
	"pagoda":    core.SceneTemple,
	"church":    core.SceneTemple,
	"cathedral": core.SceneTemple,
	"monument":  core.SceneLandmark,
	"tower":     core.SceneLandmark,
	"castle":    core.SceneLandmark,
	"palace":    core.SceneLandmark,
	"bridge":    core.SceneLandmark,
	"statue":    core.SceneLandmark,

	// Urban
	"city":       core.SceneCity,
	"street":     core.SceneCity,
	"skyline":    core.SceneCity,
	"downtown":   core.SceneCity,
	"alley":      core.SceneCity,
	"plaza":      core.SceneCity,
	"mall":       core.SceneShopping,
	"market":     core.SceneShopping,
	"shop":       core.SceneShopping,
	"store":      core.SceneShopping,
	"boutique":   core.SceneShopping,
	"airport":    core.SceneAirport,
	"terminal":   core.SceneAirport,
	"airplane":   core.SceneAirport,
	"hotel":      core.SceneHotel,
	"hotel room": core.SceneHotel,
	"lobby":      core.SceneHotel,
	"resort":     core.SceneHotel,

	// People
	"person": core.ScenePeople,
	"people": core.ScenePeople,
	"crowd":  core.ScenePeople,
	"selfie": core.ScenePeople,
	"group":  core.ScenePeople,
}

// labelKeys holds the table keys sorted longest-first so that substring
// fallback matching is deterministic ("street food" wins over "street").
var labelKeys = sortedLabelKeys()

func sortedLabelKeys() []string {
	keys := make([]string, 0, len(labelCategory))
	for key := range labelCategory {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// CategoryForLabel resolves one raw classifier label to a scene category.
// Matching is case-insensitive and falls back to substring containment so
// labels like "rocky mountain" still resolve.
func CategoryForLabel(label string) core.SceneCategory {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if cat, ok := labelCategory[normalized]; ok {
		return cat
	}
	for _, key := range labelKeys {
		if strings.Contains(normalized, key) {
			return labelCategory[key]
		}
	}
	return core.SceneUnknown
}
