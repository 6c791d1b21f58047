package dna

import (
	"reflect"
	"testing"
	"time"

	"tripweaver/internal/core"
)

func cluster(id string, day, hour int, activity core.ActivityType, photoCount int) core.PlaceCluster {
	photos := make([]core.PhotoRef, photoCount)
	return core.PlaceCluster{
		ID:        id,
		Name:      id,
		Activity:  activity,
		StartTime: time.Date(2026, 6, day, hour, 0, 0, 0, time.UTC),
		Photos:    photos,
	}
}

func TestAnalyzeEmptyTripDefaults(t *testing.T) {
	d := Analyze(nil, nil)

	if d.Primary != ArchetypeExplorer {
		t.Errorf("Primary = %q, want %q", d.Primary, ArchetypeExplorer)
	}
	if d.Secondary != "" {
		t.Errorf("Secondary = %q, want empty", d.Secondary)
	}
	if d.Pacing != PacingBalanced {
		t.Errorf("Pacing = %q, want %q", d.Pacing, PacingBalanced)
	}
	sum := d.TimePreference.Morning + d.TimePreference.Afternoon + d.TimePreference.Evening
	if sum != 100 {
		t.Errorf("time preference sum = %d, want 100", sum)
	}
	if d.ExplorationScore != 50 || d.SocialScore != 50 || d.CultureScore != 30 {
		t.Errorf("default scores = %d/%d/%d, want 50/50/30",
			d.ExplorationScore, d.SocialScore, d.CultureScore)
	}
	if d.Code == "" {
		t.Error("Code is empty")
	}
}

func TestAnalyzeFoodieTrip(t *testing.T) {
	// Restaurant-heavy itinerary spread over two days so pacing stays slow and
	// nothing outscores the food signal.
	clusters := []core.PlaceCluster{
		cluster("c1", 10, 12, core.ActivityRestaurant, 5),
		cluster("c2", 10, 19, core.ActivityRestaurant, 5),
		cluster("c3", 11, 9, core.ActivityCafe, 3),
	}
	scenes := map[string]core.SceneCategory{
		"c1": core.SceneRestaurant,
		"c2": core.SceneRestaurant,
		"c3": core.SceneCafe,
	}

	d := Analyze(clusters, scenes)

	if d.Primary != ArchetypeFoodie {
		t.Errorf("Primary = %q, want %q", d.Primary, ArchetypeFoodie)
	}
	if d.Secondary != ArchetypeRelaxer {
		t.Errorf("Secondary = %q, want %q", d.Secondary, ArchetypeRelaxer)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	clusters := []core.PlaceCluster{
		cluster("c1", 10, 8, core.ActivityMountain, 12),
		cluster("c2", 10, 14, core.ActivityNature, 8),
		cluster("c3", 11, 18, core.ActivityRestaurant, 4),
	}
	scenes := map[string]core.SceneCategory{"c1": core.SceneMountain, "c2": core.SceneNature}

	first := Analyze(clusters, scenes)
	for i := 0; i < 10; i++ {
		if got := Analyze(clusters, scenes); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestTimePreferenceSumsTo100(t *testing.T) {
	testCases := []struct {
		name     string
		clusters []core.PlaceCluster
	}{
		{
			name: "uneven thirds",
			clusters: []core.PlaceCluster{
				cluster("a", 10, 6, core.ActivityCafe, 1),
				cluster("b", 10, 13, core.ActivityTourist, 1),
				cluster("c", 10, 21, core.ActivityRestaurant, 1),
			},
		},
		{
			name: "photo weighted",
			clusters: []core.PlaceCluster{
				cluster("a", 10, 9, core.ActivityTourist, 7),
				cluster("b", 10, 15, core.ActivityShopping, 3),
			},
		},
		{
			name: "small hours count as evening",
			clusters: []core.PlaceCluster{
				cluster("a", 10, 2, core.ActivityOther, 1),
				cluster("b", 10, 4, core.ActivityOther, 1),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pref := timePreference(tc.clusters)
			sum := pref.Morning + pref.Afternoon + pref.Evening
			if sum != 100 {
				t.Errorf("sum = %d, want 100 (%+v)", sum, pref)
			}
		})
	}
}

func TestPacingBands(t *testing.T) {
	testCases := []struct {
		perDay   float64
		expected PacingStyle
	}{
		{1.0, PacingLeisurely},
		{1.5, PacingRelaxed},
		{2.4, PacingRelaxed},
		{2.5, PacingBalanced},
		{3.9, PacingBalanced},
		{4.0, PacingEnergetic},
		{5.9, PacingEnergetic},
		{6.0, PacingWhirlwind},
		{9.0, PacingWhirlwind},
	}
	for _, tc := range testCases {
		if got := pacingOf(tc.perDay); got != tc.expected {
			t.Errorf("pacingOf(%.1f) = %q, want %q", tc.perDay, got, tc.expected)
		}
	}
}

func TestTopArchetypesTieBreaksByDeclarationOrder(t *testing.T) {
	// NatureLover is declared before CultureSeeker; an exact tie must pick it.
	scores := map[Archetype]int{
		ArchetypeNatureLover:   4,
		ArchetypeCultureSeeker: 4,
	}
	primary, secondary := topArchetypes(scores)
	if primary != ArchetypeNatureLover {
		t.Errorf("primary = %q, want %q", primary, ArchetypeNatureLover)
	}
	if secondary != ArchetypeCultureSeeker {
		t.Errorf("secondary = %q, want %q", secondary, ArchetypeCultureSeeker)
	}
}

func TestTopArchetypesNoSignal(t *testing.T) {
	primary, secondary := topArchetypes(map[Archetype]int{})
	if primary != ArchetypeExplorer {
		t.Errorf("primary = %q, want %q", primary, ArchetypeExplorer)
	}
	if secondary != "" {
		t.Errorf("secondary = %q, want empty", secondary)
	}
}

func TestTraitsCapAtFive(t *testing.T) {
	// A whirlwind single morning with many outdoor places and heavy shooting
	// trips every trait rule at once.
	clusters := make([]core.PlaceCluster, 8)
	for i := range clusters {
		clusters[i] = cluster(string(rune('a'+i)), 10, 8, core.ActivityMountain, 15)
	}
	pref := timePreference(clusters)
	pacing := pacingOf(placesPerDay(clusters))
	balance := activityBalance(clusters)

	traits := deriveTraits(clusters, pref, pacing, balance)
	if len(traits) > 5 {
		t.Errorf("len(traits) = %d, want <= 5", len(traits))
	}
	if traits[0].Code != "EB" {
		t.Errorf("first trait = %q, want EB", traits[0].Code)
	}
}

func TestDNACodeFormat(t *testing.T) {
	d := TravelDNA{
		Primary:   ArchetypeFoodie,
		Secondary: ArchetypeRelaxer,
		Traits:    []Trait{{Name: "Early Bird", Code: "EB"}},
	}
	if got := dnaCode(d); got != "FD-RX-EB" {
		t.Errorf("dnaCode = %q, want FD-RX-EB", got)
	}

	solo := TravelDNA{Primary: ArchetypeExplorer}
	if got := dnaCode(solo); got != "EX" {
		t.Errorf("dnaCode = %q, want EX", got)
	}
}
