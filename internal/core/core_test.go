package core

import (
	"testing"
	"time"
)

func TestClusterDuration(t *testing.T) {
	start := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

	known := PlaceCluster{StartTime: start, EndTime: start.Add(45 * time.Minute)}
	if d, ok := known.Duration(); !ok || d != 45*time.Minute {
		t.Errorf("Duration = %v ok=%v, want 45m true", d, ok)
	}

	unknown := PlaceCluster{StartTime: start}
	if _, ok := unknown.Duration(); ok {
		t.Error("ok = true for a zero end time, want false")
	}
}

func TestDayCount(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }
	testCases := []struct {
		name     string
		meta     TripMetadata
		expected int
	}{
		{"zero dates", TripMetadata{}, 1},
		{"same day", TripMetadata{StartDate: day(10), EndDate: day(10)}, 1},
		{"three days", TripMetadata{StartDate: day(10), EndDate: day(12)}, 3},
		{"inverted dates clamp", TripMetadata{StartDate: day(12), EndDate: day(10)}, 1},
	}
	for _, tc := range testCases {
		if got := tc.meta.DayCount(); got != tc.expected {
			t.Errorf("%s: DayCount = %d, want %d", tc.name, got, tc.expected)
		}
	}
}

func TestAnalysisLevelAtLeast(t *testing.T) {
	if !LevelAdvanced.AtLeast(LevelSmart) || !LevelSmart.AtLeast(LevelSmart) {
		t.Error("higher or equal level failed AtLeast")
	}
	if LevelBasic.AtLeast(LevelSmart) {
		t.Error("basic.AtLeast(smart) = true")
	}
	if AnalysisLevel("bogus").AtLeast(LevelSmart) {
		t.Error("unknown level ranked at or above smart")
	}
	if !AnalysisLevel("bogus").AtLeast(LevelBasic) {
		t.Error("unknown level ranked below basic")
	}
}

func TestTripContextIsTravel(t *testing.T) {
	if !ContextTravel.IsTravel() {
		t.Error("travel context not recognized")
	}
	for _, c := range []TripContext{ContextDaily, ContextOuting, ContextMixed} {
		if c.IsTravel() {
			t.Errorf("%q.IsTravel() = true", c)
		}
	}
}

func TestSceneActivityMapping(t *testing.T) {
	testCases := []struct {
		scene    SceneCategory
		expected ActivityType
		ok       bool
	}{
		{SceneBeach, ActivityBeach, true},
		{SceneCafe, ActivityCafe, true},
		{SceneMuseum, ActivityCulture, true},
		{SceneUnknown, "", false},
	}
	for _, tc := range testCases {
		got, ok := tc.scene.ActivityType()
		if ok != tc.ok || (ok && got != tc.expected) {
			t.Errorf("%q.ActivityType() = %q, %v; want %q, %v", tc.scene, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestSceneDisplayNamesComplete(t *testing.T) {
	for _, scene := range AllSceneCategories {
		if scene.DisplayName() == "" {
			t.Errorf("scene %q has no display name", scene)
		}
		if scene.Emoji() == "" {
			t.Errorf("scene %q has no emoji", scene)
		}
	}
}

func TestActivityDisplayNamesComplete(t *testing.T) {
	for _, activity := range AllActivityTypes {
		if activity.DisplayName() == "" {
			t.Errorf("activity %q has no display name", activity)
		}
		if activity.Emoji() == "" {
			t.Errorf("activity %q has no emoji", activity)
		}
	}
}

func TestHotspotsTotals(t *testing.T) {
	empty := NearbyHotspots{}
	if !empty.IsEmpty() || empty.Total() != 0 {
		t.Errorf("empty hotspots: IsEmpty=%v Total=%d", empty.IsEmpty(), empty.Total())
	}

	full := NearbyHotspots{
		Cafes:       []POI{{Name: "a"}},
		Restaurants: []POI{{Name: "b"}, {Name: "c"}},
	}
	if full.IsEmpty() || full.Total() != 3 {
		t.Errorf("hotspots: IsEmpty=%v Total=%d, want false 3", full.IsEmpty(), full.Total())
	}
}
