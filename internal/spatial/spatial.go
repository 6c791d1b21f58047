package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"tripweaver/internal/core"
)

// Earth radii used for angular-to-linear conversion.
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// DistanceMeters calculates the great-circle distance between two points in
// meters.
func DistanceMeters(a, b core.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DistanceKm calculates the great-circle distance between two points in
// kilometers.
func DistanceKm(a, b core.GeoPoint) float64 {
	return DistanceMeters(a, b) / 1000.0
}

// Bearing calculates the initial bearing (forward azimuth) from a to b.
// Returns degrees in [0,360), where 0 is North and 90 is East.
func Bearing(a, b core.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lonDiff := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(bearing+360, 360)
}

// Midpoint calculates the midpoint between two points along the great circle.
func Midpoint(a, b core.GeoPoint) core.GeoPoint {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	mid := s2.LatLngFromPoint(s2.Interpolate(0.5, s2.PointFromLatLng(p1), s2.PointFromLatLng(p2)))
	return core.GeoPoint{Lat: mid.Lat.Degrees(), Lon: mid.Lng.Degrees()}
}

// PathDistanceKm sums the leg distances along an ordered cluster sequence.
func PathDistanceKm(clusters []core.PlaceCluster) float64 {
	var total float64
	for i := 1; i < len(clusters); i++ {
		total += DistanceKm(clusters[i-1].Center, clusters[i].Center)
	}
	return total
}
