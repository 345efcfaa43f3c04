package kernel

import (
	"errors"
	"fmt"

	"medcourier/internal/pkg/errs"
	"medcourier/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the minimum valid latitude in degrees.
	GeoPointMinLatitude = -90.0
	// GeoPointMaxLatitude is the maximum valid latitude in degrees.
	GeoPointMaxLatitude = 90.0
	// GeoPointMinLongitude is the minimum valid longitude in degrees.
	GeoPointMinLongitude = -180.0
	// GeoPointMaxLongitude is the maximum valid longitude in degrees.
	GeoPointMaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated WGS84 coordinates.
// It is an immutable value object; the zero value is invalid and fails
// validation. Distances between points are deliberately not computed here;
// routing distance is a collaborator concern supplied through a port.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(24.7136, 46.6753)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(24.713600,46.675300)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must be within [-90..90] and longitude within [-180..180];
// out-of-range values produce a ValueIsOutOfRange error.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation in the form
// "GeoPoint(lat,lon)". Implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// setLatitude sets the latitude with range validation.
// Note: pointer receiver is used for private setters to enable
// self-encapsulated validation during construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < GeoPointMinLatitude || latitude > GeoPointMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoPointMinLatitude, GeoPointMaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < GeoPointMinLongitude || longitude > GeoPointMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	p.longitude = longitude
	return nil
}
