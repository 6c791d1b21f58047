package core

import "time"

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"` // Latitude in degrees
	Lon float64 `json:"lon"` // Longitude in degrees
}

// PhotoRef identifies a single photo belonging to a cluster.
// The pipeline never loads image bytes itself; the reference is handed to the
// vision collaborator as-is.
type PhotoRef struct {
	ID      string    `json:"id"`       // Unique identifier for the photo
	URI     string    `json:"uri"`      // Opaque locator understood by the classifier
	TakenAt time.Time `json:"taken_at"` // Capture timestamp
}

// PlaceCluster is one physical place visited during one window of the trip.
// Clusters arrive from the clustering collaborator already ordered by start
// time and are read-only to this pipeline.
type PlaceCluster struct {
	ID        string       `json:"id"`         // Unique identifier for the cluster
	Name      string       `json:"name"`       // Display name from the clustering stage
	Center    GeoPoint     `json:"center"`     // Geographic center of the cluster
	Activity  ActivityType `json:"activity"`   // Activity classification from the clustering stage
	StartTime time.Time    `json:"start_time"` // Visit start
	EndTime   time.Time    `json:"end_time"`   // Visit end; zero value when unknown
	Photos    []PhotoRef   `json:"photos"`     // Ordered photo references
}

// Duration returns the dwell time at the place. ok is false when the end time
// is unknown.
func (c PlaceCluster) Duration() (time.Duration, bool) {
	if c.EndTime.IsZero() {
		return 0, false
	}
	return c.EndTime.Sub(c.StartTime), true
}

// PhotoCount returns the number of photos attributed to the cluster.
func (c PlaceCluster) PhotoCount() int {
	return len(c.Photos)
}

// StartHour returns the local hour-of-day of the visit start.
func (c PlaceCluster) StartHour() int {
	return c.StartTime.Hour()
}

// TripMetadata is trip-level information produced by the clustering and
// geocoding collaborators.
type TripMetadata struct {
	Title           string    `json:"title"`             // Trip title
	StartDate       time.Time `json:"start_date"`        // First day of the trip
	EndDate         time.Time `json:"end_date"`          // Last day of the trip
	TotalDistanceKm float64   `json:"total_distance_km"` // Total distance traveled
	PhotoCount      int       `json:"photo_count"`       // Total photos across the trip
}

// DayCount returns the number of calendar days the trip spans, never below 1.
func (m TripMetadata) DayCount() int {
	if m.StartDate.IsZero() || m.EndDate.IsZero() {
		return 1
	}
	days := int(m.EndDate.Sub(m.StartDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Classification is one ranked label returned by the vision collaborator for a
// single image. Confidence is in [0,1].
type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// POICategory groups point-of-interest search results.
type POICategory string

const (
	POICafe       POICategory = "cafe"
	POIRestaurant POICategory = "restaurant"
	POIAttraction POICategory = "attraction"
	POILandmark   POICategory = "landmark"
)

// POI is one point-of-interest result from the search collaborator.
type POI struct {
	Name           string      `json:"name"`
	Category       POICategory `json:"category"`
	Location       GeoPoint    `json:"location"`
	DistanceMeters float64     `json:"distance_meters"`
	Address        string      `json:"address,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	URL            string      `json:"url,omitempty"`
}

// NearbyHotspots groups nearby POIs for one cluster. An empty value means no
// results, which is a valid outcome rather than a failure.
type NearbyHotspots struct {
	Cafes       []POI `json:"cafes"`
	Restaurants []POI `json:"restaurants"`
	Attractions []POI `json:"attractions"`
}

// Total returns the number of hotspots across all categories.
func (h NearbyHotspots) Total() int {
	return len(h.Cafes) + len(h.Restaurants) + len(h.Attractions)
}

// IsEmpty reports whether no category produced any result.
func (h NearbyHotspots) IsEmpty() bool {
	return h.Total() == 0
}

// AnalysisLevel selects how much enrichment an analysis run performs.
type AnalysisLevel string

const (
	LevelBasic    AnalysisLevel = "basic"
	LevelSmart    AnalysisLevel = "smart"
	LevelAdvanced AnalysisLevel = "advanced"
)

var levelRank = map[AnalysisLevel]int{
	LevelBasic:    0,
	LevelSmart:    1,
	LevelAdvanced: 2,
}

// AtLeast reports whether the level is at or above other. Unknown levels rank
// below basic.
func (l AnalysisLevel) AtLeast(other AnalysisLevel) bool {
	return levelRank[l] >= levelRank[other]
}

// TripContext describes what kind of photo set is being analyzed. Personality,
// story and insight stages only run for travel contexts.
type TripContext string

const (
	ContextTravel TripContext = "travel"
	ContextDaily  TripContext = "daily"
	ContextOuting TripContext = "outing"
	ContextMixed  TripContext = "mixed"
)

// IsTravel reports whether the travel-only stages should run.
func (c TripContext) IsTravel() bool {
	return c == ContextTravel
}
