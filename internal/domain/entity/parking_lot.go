// Package entity contains the core business objects of the project.
package entity

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ParkingLot is a point of interest classified as parking by the places provider.
// It lives only as long as one lookup response.
type ParkingLot struct {
	ID             string     `json:"id"`              // Provider-assigned place identifier.
	Name           string     `json:"name"`            // Display name, also the subscription correlation key.
	Location       Coordinate `json:"location"`        // Position of the lot.
	DistanceMeters float64    `json:"distance_meters"` // Great-circle distance from the lookup center.
}

// DisplayName returns the lot name, or "Unknown" for unnamed places.
func (p ParkingLot) DisplayName() string {
	if p.Name == "" {
		return UnknownLotName
	}

	return p.Name
}

// UnknownLotName is used for lots the provider returned without a name.
const UnknownLotName = "Unknown"

// LookupStatus is the enumerated outcome of a places lookup.
type LookupStatus string

const (
	LookupOK           LookupStatus = "OK"
	LookupNoResults    LookupStatus = "NO_RESULTS"
	LookupAccessDenied LookupStatus = "ACCESS_DENIED"
	LookupRateLimited  LookupStatus = "RATE_LIMITED"
	LookupUnknown      LookupStatus = "UNKNOWN"
)

// IsError reports whether the status is a failure shown as an error state.
// NoResults is an empty result, not an error.
func (s LookupStatus) IsError() bool {
	return s != LookupOK && s != LookupNoResults
}

// UserMessage returns the message shown to the viewer for this status.
func (s LookupStatus) UserMessage() string {
	switch s {
	case LookupOK:
		return ""
	case LookupNoResults:
		return "We're sorry, but we couldn't find any nearby parking lots at the moment. Please try again later or adjust your search criteria."
	case LookupAccessDenied:
		return "The map service rejected our API key. Please try again later."
	case LookupRateLimited:
		return "Too many map searches right now. Please wait a moment and try again."
	default:
		return "There was an error loading nearby parking lots."
	}
}
