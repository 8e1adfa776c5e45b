package entity

import "time"

// MarkerKind distinguishes the viewer marker from lot markers.
type MarkerKind string

const (
	MarkerViewer MarkerKind = "viewer"
	MarkerLot    MarkerKind = "lot"
	MarkerCustom MarkerKind = "custom"
)

// Marker is one pin on the map.
type Marker struct {
	Key      string     `json:"key"`
	Kind     MarkerKind `json:"kind"`
	Title    string     `json:"title"`
	Position Coordinate `json:"position"`
}

// MapView is everything the map needs to render after one lookup.
type MapView struct {
	Viewer  Coordinate   `json:"viewer"`
	Status  LookupStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Markers []Marker     `json:"markers"`
}

// PanelView is the detail panel of one lot.
type PanelView struct {
	ParkingLot    string        `json:"parkingLot"`
	ParkingLotID  string        `json:"parkingLotId,omitempty"`
	Count         int           `json:"count"`
	Window        time.Duration `json:"-"`
	WindowSeconds int64         `json:"windowSeconds"`
	WindowLabel   string        `json:"window"`
}
