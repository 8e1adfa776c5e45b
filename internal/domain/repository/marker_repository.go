package repository

import (
	"context"

	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/errors"
)

// ErrMarkerNotFound is returned when a custom marker does not exist.
var ErrMarkerNotFound = errors.New("custom marker not found")

// MarkerRepository defines storage for user-placed custom markers.
type MarkerRepository interface {
	// CreateMarker persists a new marker and sets its generated ID.
	CreateMarker(ctx context.Context, marker *entity.CustomMarker) error

	// FindAllMarkers retrieves every stored marker.
	FindAllMarkers(ctx context.Context) ([]*entity.CustomMarker, error)

	// DeleteMarker removes the marker with the given ID.
	DeleteMarker(ctx context.Context, id string) error
}
