package usecase

import (
	"context"

	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/errors"
)

// ErrPanelClosed is returned by Panel.Count when the panel closed before the count arrived.
var ErrPanelClosed = errors.New("panel closed")

// LotSearch is the outcome of one nearby lookup
type LotSearch struct {
	Lots    []entity.ParkingLot `json:"lots"`
	Status  entity.LookupStatus `json:"status"`
	Message string              `json:"message,omitempty"`
}

// MapUsecase composes the map view from the viewer position, nearby lots and custom markers
type MapUsecase interface {
	// ResolveViewer returns the viewer coordinate, or the configured default
	// when it is missing or out of range
	ResolveViewer(viewer *entity.Coordinate) entity.Coordinate

	// LoadMap looks up lots around the viewer and builds the markers. Lookup
	// failures are reported in the view status, never as an error.
	LoadMap(ctx context.Context, viewer entity.Coordinate) *entity.MapView

	// FindLots runs one lookup. A non-positive radius uses the configured default.
	FindLots(ctx context.Context, center entity.Coordinate, radiusMeters float64) *LotSearch

	// OpenPanel opens the detail panel of a lot and starts its count query
	OpenPanel(ctx context.Context, lot entity.LotRef) Panel
}

// Panel is the detail panel of one lot. Its count query is bound to the
// panel and cancelled by Close.
type Panel interface {
	Lot() entity.LotRef

	// Count waits for the count query. It returns ErrPanelClosed when the
	// panel was closed first.
	Count() (int, error)

	// View waits for the count and returns the panel contents
	View() (*entity.PanelView, error)

	// Subscribe registers a phone number for this lot
	Subscribe(ctx context.Context, phoneNumber string) (*entity.Subscription, error)

	// Notify dispatches a message to every subscriber of this lot
	Notify(ctx context.Context, message string) (*entity.DispatchResult, error)

	// Close cancels the in-flight count query. It is safe to call more than once.
	Close()
}
