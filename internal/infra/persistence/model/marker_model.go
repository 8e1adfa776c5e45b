package model

import "bootwatcher/internal/domain/entity"

// MarkersPath is the database node holding custom markers.
const MarkersPath = "customMarkers"

// UsersPath is the database node exposed by the diagnostics endpoint.
const UsersPath = "users"

// MarkerRecord is a custom marker as stored under customMarkers/<pushId>.
type MarkerRecord struct {
	Key      string            `json:"key,omitempty"`
	Name     string            `json:"name"`
	Location entity.Coordinate `json:"location"`
}

// FromMarkerDomain converts a domain marker into its stored form.
func FromMarkerDomain(m *entity.CustomMarker) *MarkerRecord {
	return &MarkerRecord{
		Key:      m.ID,
		Name:     m.Name,
		Location: m.Location,
	}
}

// ToDomain converts a stored marker into a domain marker keyed by its node id.
func (r *MarkerRecord) ToDomain(id string) *entity.CustomMarker {
	return &entity.CustomMarker{
		ID:       id,
		Name:     r.Name,
		Location: r.Location,
	}
}
