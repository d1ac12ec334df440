package protocol

import (
	"encoding/json"
	"fmt"
)

// GeoLocation is a physical geo-location of a controller.
//
// A GeoLocation can only be created through NewGeoLocation, which guarantees
// that both coordinates are finite, normal numbers within range.
type GeoLocation struct {
	latitude  float64
	longitude float64
}

// NewGeoLocation creates a GeoLocation from a latitude/longitude pair.
//
// Returns an error if either value is NaN, infinite or sub-normal, if the
// latitude is outside [-90, 90], or if the longitude is outside [-180, 180].
func NewGeoLocation(latitude, longitude float64) (GeoLocation, error) {
	if err := checkFloat("geo_latitude", latitude); err != nil {
		return GeoLocation{}, err
	}
	if err := checkFloat("geo_longitude", longitude); err != nil {
		return GeoLocation{}, err
	}
	if latitude < -90 || latitude > 90 {
		return GeoLocation{}, NewInvalidFieldError("geo_latitude",
			fmt.Sprintf("%g", latitude), "latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return GeoLocation{}, NewInvalidFieldError("geo_longitude",
			fmt.Sprintf("%g", longitude), "longitude must be between -180 and 180")
	}
	return GeoLocation{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude
func (g GeoLocation) Latitude() float64 { return g.latitude }

// Longitude returns the longitude
func (g GeoLocation) Longitude() float64 { return g.longitude }

// Validate re-checks the coordinate invariants.
// A GeoLocation built through NewGeoLocation always passes.
func (g GeoLocation) Validate() error {
	_, err := NewGeoLocation(g.latitude, g.longitude)
	return err
}

// String renders the location as "(latitude,longitude)"
func (g GeoLocation) String() string {
	return fmt.Sprintf("(%g,%g)", g.latitude, g.longitude)
}

// geoLocationJSON is the wire shape of a geo-location
type geoLocationJSON struct {
	GeoLatitude  float64 `json:"geoLatitude"`
	GeoLongitude float64 `json:"geoLongitude"`
}

// MarshalJSON implements json.Marshaler
func (g GeoLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoLocationJSON{GeoLatitude: g.latitude, GeoLongitude: g.longitude})
}

// UnmarshalJSON implements json.Unmarshaler, routing the coordinates through
// NewGeoLocation so an invalid pair cannot be materialized
func (g *GeoLocation) UnmarshalJSON(data []byte) error {
	var wire geoLocationJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	loc, err := NewGeoLocation(wire.GeoLatitude, wire.GeoLongitude)
	if err != nil {
		return err
	}
	*g = loc
	return nil
}
