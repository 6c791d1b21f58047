package spatial

import (
	"math"
	"testing"

	"tripweaver/internal/core"
)

// Tokyo Station and Shinjuku Station, roughly 6.4 km apart.
var (
	tokyo    = core.GeoPoint{Lat: 35.6812, Lon: 139.7671}
	shinjuku = core.GeoPoint{Lat: 35.6896, Lon: 139.7006}
)

func TestDistanceMeters(t *testing.T) {
	got := DistanceMeters(tokyo, shinjuku)
	if got < 5900 || got > 6500 {
		t.Errorf("DistanceMeters = %f, want roughly 6000-6400", got)
	}

	if got := DistanceMeters(tokyo, tokyo); got != 0 {
		t.Errorf("distance to self = %f, want 0", got)
	}
}

func TestDistanceKmMatchesMeters(t *testing.T) {
	meters := DistanceMeters(tokyo, shinjuku)
	km := DistanceKm(tokyo, shinjuku)
	if math.Abs(km*1000-meters) > 1e-6 {
		t.Errorf("DistanceKm = %f, DistanceMeters = %f", km, meters)
	}
}

func TestBearing(t *testing.T) {
	north := core.GeoPoint{Lat: 36.0, Lon: 139.7671}
	if got := Bearing(tokyo, north); math.Abs(got-0) > 1 && math.Abs(got-360) > 1 {
		t.Errorf("northward bearing = %f, want ~0", got)
	}

	east := core.GeoPoint{Lat: 35.6812, Lon: 140.5}
	if got := Bearing(tokyo, east); math.Abs(got-90) > 1 {
		t.Errorf("eastward bearing = %f, want ~90", got)
	}
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(tokyo, shinjuku)
	if DistanceMeters(tokyo, mid) > DistanceMeters(tokyo, shinjuku) {
		t.Errorf("midpoint %v farther than the endpoint", mid)
	}
	toMid := DistanceMeters(tokyo, mid)
	fromMid := DistanceMeters(mid, shinjuku)
	if math.Abs(toMid-fromMid) > 1 {
		t.Errorf("midpoint not equidistant: %f vs %f", toMid, fromMid)
	}
}

func TestPathDistanceKm(t *testing.T) {
	clusters := []core.PlaceCluster{
		{Center: tokyo},
		{Center: shinjuku},
		{Center: tokyo},
	}
	leg := DistanceKm(tokyo, shinjuku)
	if got := PathDistanceKm(clusters); math.Abs(got-2*leg) > 1e-9 {
		t.Errorf("PathDistanceKm = %f, want %f", got, 2*leg)
	}

	if got := PathDistanceKm(nil); got != 0 {
		t.Errorf("PathDistanceKm(nil) = %f, want 0", got)
	}
	if got := PathDistanceKm(clusters[:1]); got != 0 {
		t.Errorf("single cluster path = %f, want 0", got)
	}
}
