package util

import (
	"fmt"
	"math"

	"dp-server/models"
)

// EARTH_RADIUS_KM is the mean Earth radius used by the haversine formula.
const EARTH_RADIUS_KM = 6371.0

// DistanceKm computes the great-circle distance between two coordinates using
// the haversine formula. Pure function; the only failure mode is bad input.
func DistanceKm(a, b models.Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("invalid coordinate a: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("invalid coordinate b: %w", err)
	}

	latA := toRadians(a.Latitude)
	latB := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EARTH_RADIUS_KM * c, nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
