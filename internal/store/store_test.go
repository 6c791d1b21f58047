package store

import (
	"testing"
	"time"

	"tripweaver/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSceneCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.GetSceneCategory("c1", time.Hour); ok {
		t.Error("hit on an empty cache")
	}

	if err := s.StoreSceneCategory("c1", core.SceneBeach); err != nil {
		t.Fatalf("StoreSceneCategory: %v", err)
	}
	got, ok := s.GetSceneCategory("c1", time.Hour)
	if !ok || got != core.SceneBeach {
		t.Errorf("GetSceneCategory = %q, %v; want beach, true", got, ok)
	}

	// Replacing an entry keeps the latest value.
	if err := s.StoreSceneCategory("c1", core.SceneCafe); err != nil {
		t.Fatalf("StoreSceneCategory: %v", err)
	}
	if got, _ := s.GetSceneCategory("c1", time.Hour); got != core.SceneCafe {
		t.Errorf("GetSceneCategory after replace = %q, want cafe", got)
	}
}

func TestSceneCacheTTLExpiry(t *testing.T) {
	s := newTestStore(t)

	if err := s.StoreSceneCategory("c1", core.SceneBeach); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.GetSceneCategory("c1", -time.Second); ok {
		t.Error("expired entry returned as a hit")
	}
}

func TestHotspotCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)
	center := core.GeoPoint{Lat: 35.6812, Lon: 139.7671}

	hotspots := core.NearbyHotspots{
		Cafes:       []core.POI{{Name: "Harbor Cafe", Category: core.POICafe}},
		Attractions: []core.POI{{Name: "Tower", Category: core.POIAttraction}},
	}
	if err := s.StoreHotspots(center, hotspots); err != nil {
		t.Fatalf("StoreHotspots: %v", err)
	}

	got, ok := s.GetHotspots(center, time.Hour)
	if !ok {
		t.Fatal("miss after store")
	}
	if len(got.Cafes) != 1 || got.Cafes[0].Name != "Harbor Cafe" || len(got.Attractions) != 1 {
		t.Errorf("GetHotspots = %+v", got)
	}

	// A coordinate within the same ~11m cell shares the entry.
	nearby := core.GeoPoint{Lat: 35.68121, Lon: 139.76713}
	if _, ok := s.GetHotspots(nearby, time.Hour); !ok {
		t.Error("same-cell coordinate missed the cache")
	}

	far := core.GeoPoint{Lat: 35.7, Lon: 139.8}
	if _, ok := s.GetHotspots(far, time.Hour); ok {
		t.Error("distant coordinate hit the cache")
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	center := core.GeoPoint{Lat: 35.0, Lon: 139.0}

	if err := s.StoreSceneCategory("c1", core.SceneBeach); err != nil {
		t.Fatal(err)
	}
	if err := s.StoreHotspots(center, core.NearbyHotspots{Cafes: []core.POI{{Name: "x"}}}); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.GetSceneCategory("c1", time.Hour); ok {
		t.Error("scene entry survived Clear")
	}
	if _, ok := s.GetHotspots(center, time.Hour); ok {
		t.Error("hotspot entry survived Clear")
	}
}

func TestCellKeyQuantization(t *testing.T) {
	a := cellKey(core.GeoPoint{Lat: 35.68121, Lon: 139.76712})
	b := cellKey(core.GeoPoint{Lat: 35.68123, Lon: 139.76714})
	if a != b {
		t.Errorf("nearby points map to different cells: %q vs %q", a, b)
	}

	c := cellKey(core.GeoPoint{Lat: 35.69, Lon: 139.76712})
	if a == c {
		t.Errorf("distant points share a cell: %q", a)
	}
}
