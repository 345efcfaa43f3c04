// Package geo implements distance estimation with great-circle geometry.
package geo

import (
	"math"

	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/ports"
)

const earthRadiusKm = 6371.0

// HaversineCalculator computes the great-circle distance between two points.
// Good enough for rider payout and SLA estimation at city scale; swap in a
// routing service implementation when street-level accuracy matters.
type HaversineCalculator struct{}

var _ ports.DistanceCalculator = HaversineCalculator{}

// NewHaversineCalculator creates a calculator using the haversine formula.
func NewHaversineCalculator() HaversineCalculator {
	return HaversineCalculator{}
}

// DistanceKm returns the great-circle distance between two points in
// kilometers.
func (HaversineCalculator) DistanceKm(from, to kernel.GeoPoint) (float64, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	lat1 := from.Latitude() * math.Pi / 180
	lat2 := to.Latitude() * math.Pi / 180
	dLat := (to.Latitude() - from.Latitude()) * math.Pi / 180
	dLon := (to.Longitude() - from.Longitude()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}
