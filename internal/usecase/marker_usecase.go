package usecase

import (
	"context"

	"bootwatcher/internal/domain/entity"
)

// MarkerUsecase defines the custom parking marker use cases
type MarkerUsecase interface {
	// ListMarkers returns every custom marker
	ListMarkers(ctx context.Context) ([]*entity.CustomMarker, error)

	// AddMarker stores a marker at location. An empty name uses the default label.
	AddMarker(ctx context.Context, name string, location entity.Coordinate) (*entity.CustomMarker, error)

	// DeleteMarker removes a marker by ID
	DeleteMarker(ctx context.Context, id string) error
}
