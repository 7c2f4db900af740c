// Package location verifies proof of location against the office geofence.
package location

import (
	"context"
	"errors"
	"fmt"
	"math"

	"presence/internal/attendance/models"
	dErrors "presence/pkg/domain-errors"
)

// EarthRadiusMeters is the IUGG mean Earth radius.
const EarthRadiusMeters = 6371008.8

// Provider is the device geolocation capability.
type Provider interface {
	// CurrentLocation returns the latest device fix. A nil coordinate means no
	// location is available: permission denied or no fix acquired yet.
	CurrentLocation(ctx context.Context) (*models.GeoCoordinate, error)
}

// Verifier queries the provider fresh on every call; nothing is cached.
type Verifier struct {
	provider Provider
}

func New(provider Provider) (*Verifier, error) {
	if provider == nil {
		return nil, errors.New("location provider is required")
	}
	return &Verifier{provider: provider}, nil
}

// Verify fetches the current fix and checks it against zone.
func (v *Verifier) Verify(ctx context.Context, zone models.OfficeZone) error {
	current, err := v.provider.CurrentLocation(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeLocationUnauthorized, "location is not available")
	}
	return Evaluate(current, zone)
}

// Evaluate admits current iff its great-circle distance to the zone center is
// at most the zone radius. The boundary is admissible.
func Evaluate(current *models.GeoCoordinate, zone models.OfficeZone) error {
	if current == nil {
		return dErrors.New(dErrors.CodeLocationUnauthorized, "location is not available")
	}
	distance := Distance(*current, zone.Center)
	if !(distance <= zone.RadiusMeters) {
		return dErrors.New(dErrors.CodeLocationOutOfZone,
			fmt.Sprintf("%.1fm from office exceeds %.1fm radius", distance, zone.RadiusMeters))
	}
	return nil
}

// Distance returns the haversine great-circle distance in meters.
func Distance(a, b models.GeoCoordinate) float64 {
	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := degreesToRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// ValidateZone rejects zones that could never admit anyone or that carry
// coordinates outside the valid ranges.
func ValidateZone(zone models.OfficeZone) error {
	if err := ValidateCoordinate(zone.Center); err != nil {
		return err
	}
	if math.IsNaN(zone.RadiusMeters) || math.IsInf(zone.RadiusMeters, 0) || zone.RadiusMeters <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "office radius must be a positive number of meters")
	}
	return nil
}

// ValidateCoordinate checks latitude is within [-90, 90] and longitude within [-180, 180].
func ValidateCoordinate(c models.GeoCoordinate) error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return dErrors.New(dErrors.CodeInvalidInput, "latitude must be within [-90, 90]")
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return dErrors.New(dErrors.CodeInvalidInput, "longitude must be within [-180, 180]")
	}
	return nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
