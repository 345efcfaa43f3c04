package ports

import (
	"medcourier/internal/core/domain/model/kernel"
)

// DistanceCalculator estimates the travel distance between two points.
// Implementations may use straight-line geometry or an external routing
// service.
type DistanceCalculator interface {
	// DistanceKm returns the distance between two points in kilometers.
	DistanceKm(from, to kernel.GeoPoint) (float64, error)
}
