package kernel

import (
	"errors"
	"fmt"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

const (
	// LatMin and LatMax bound valid WGS84 latitudes in degrees.
	LatMin = -90.0
	LatMax = 90.0
	// LngMin and LngMax bound valid WGS84 longitudes in degrees.
	LngMin = -180.0
	LngMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. Points must be created with NewGeoPoint to guarantee valid
// coordinates.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a validated latitude/longitude
// pair. It represents the last known position of a delivery in progress.
// The zero value is invalid and fails validation.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(16.4419, 80.6226)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with validated coordinates. Latitude must be
// within [-90, 90] and longitude within [-180, 180], both in degrees.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// Validate ensures the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatMin || lat > LatMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatMin, LatMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < LngMin || lng > LngMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LngMin, LngMax)
	}
	p.lng = lng
	return nil
}
