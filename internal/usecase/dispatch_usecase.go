package usecase

import (
	"context"

	"bootwatcher/internal/domain/entity"
)

// DispatchRequest is a caller-supplied broadcast
type DispatchRequest struct {
	PhoneNumbers []string
	Message      string
	ParkingLot   string
}

// DispatchUsecase defines the notification fan-out use cases
type DispatchUsecase interface {
	// Dispatch sends the message to every number in the request. Partial
	// failures are reported per destination and do not fail the dispatch.
	Dispatch(ctx context.Context, req *DispatchRequest) (*entity.DispatchResult, error)

	// NotifyLot sends the message to every subscriber of the lot. An empty
	// message uses the configured notification body.
	NotifyLot(ctx context.Context, lotName, message string) (*entity.DispatchResult, error)
}
