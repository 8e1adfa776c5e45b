package entity

// CustomMarker is a user-placed parking marker stored next to the subscriptions.
type CustomMarker struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

// DefaultCustomMarkerName labels markers created without a name.
const DefaultCustomMarkerName = "Custom Parking"
