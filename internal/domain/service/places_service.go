package service

import (
	"context"
	"fmt"

	"bootwatcher/internal/domain/entity"
)

// LookupError carries the enumerated status of a failed places lookup.
type LookupError struct {
	Status entity.LookupStatus
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("places lookup failed (%s): %v", e.Status, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// PlacesService defines the nearby places search
type PlacesService interface {
	// FindNearby returns places of the given category within radiusMeters of
	// center, nearest first. An empty result is not an error. Failures are
	// returned as *LookupError.
	FindNearby(ctx context.Context, center entity.Coordinate, radiusMeters float64, category string) ([]entity.ParkingLot, error)
}
