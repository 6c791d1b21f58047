package insight

import (
	"tripweaver/internal/core"
)

// Category groups insight types for presentation.
type Category string

const (
	CategoryTime     Category = "time_pattern"
	CategoryPlace    Category = "place_discovery"
	CategoryActivity Category = "activity_pattern"
	CategoryStats    Category = "statistic"
	CategorySpecial  Category = "special"
)

// Type is the closed set of discoveries the detectors can surface.
type Type string

const (
	// Time patterns
	TypeGoldenHourMagic Type = "golden_hour_magic"
	TypeActiveHour      Type = "active_hour"
	TypeNightExplorer   Type = "night_explorer"
	TypeEarlyRiser      Type = "early_riser"

	// Place discoveries
	TypeHiddenGem           Type = "hidden_gem"
	TypeLongStay            Type = "long_stay"
	TypeLongestStay         Type = "longest_stay"
	TypeUnexpectedDiscovery Type = "unexpected_discovery"

	// Activity patterns
	TypeDiverseExplorer Type = "diverse_explorer"
	TypeDeepDive        Type = "deep_dive"

	// Statistics
	TypeDistanceMilestone   Type = "distance_milestone"
	TypePhotoMilestone      Type = "photo_milestone"
	TypePlaceCountMilestone Type = "place_count_milestone"

	// Special
	TypeMemoryTrigger  Type = "memory_trigger"
	TypeExplorerSpirit Type = "explorer_spirit"
	TypeCultureLover   Type = "culture_lover"
)

var typeCategory = map[Type]Category{
	TypeGoldenHourMagic:     CategoryTime,
	TypeActiveHour:          CategoryTime,
	TypeNightExplorer:       CategoryTime,
	TypeEarlyRiser:          CategoryTime,
	TypeHiddenGem:           CategoryPlace,
	TypeLongStay:            CategoryPlace,
	TypeLongestStay:         CategoryPlace,
	TypeUnexpectedDiscovery: CategoryPlace,
	TypeDiverseExplorer:     CategoryActivity,
	TypeDeepDive:            CategoryActivity,
	TypeDistanceMilestone:   CategoryStats,
	TypePhotoMilestone:      CategoryStats,
	TypePlaceCountMilestone: CategoryStats,
	TypeMemoryTrigger:       CategorySpecial,
	TypeExplorerSpirit:      CategorySpecial,
	TypeCultureLover:        CategorySpecial,
}

// Category returns the presentation category for the type.
func (t Type) Category() Category {
	return typeCategory[t]
}

// Importance is the five-level ordinal ranking of an insight.
type Importance int

const (
	ImportanceLow Importance = iota + 1
	ImportanceNotable
	ImportanceInteresting
	ImportanceHighlight
	ImportanceExceptional
)

var importanceDisplayName = map[Importance]string{
	ImportanceLow:         "Low",
	ImportanceNotable:     "Notable",
	ImportanceInteresting: "Interesting",
	ImportanceHighlight:   "Highlight",
	ImportanceExceptional: "Exceptional",
}

// DisplayName returns the human-readable importance label.
func (i Importance) DisplayName() string {
	return importanceDisplayName[i]
}

// Insight is one discrete discovery. It is created once per discovery run and
// never mutated. Related is a non-owning lookup aid back to the triggering
// clusters; it is excluded from every serialized projection (see View).
type Insight struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Category    Category   `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	Importance  Importance `json:"importance"`
	Suggestion  string     `json:"suggestion,omitempty"`

	Related []core.PlaceCluster `json:"-"`
}

// View is the transport-only projection of an Insight, omitting the cluster
// back-references by construction rather than by serialization rules.
type View struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Category    Category   `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	Importance  Importance `json:"importance"`
	Suggestion  string     `json:"suggestion,omitempty"`
}

// View returns the serializable projection of the insight.
func (in Insight) View() View {
	return View{
		ID:          in.ID,
		Type:        in.Type,
		Category:    in.Category,
		Title:       in.Title,
		Description: in.Description,
		Emoji:       in.Emoji,
		Importance:  in.Importance,
		Suggestion:  in.Suggestion,
	}
}
