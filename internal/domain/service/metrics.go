package service

import (
	"time"

	"bootwatcher/internal/domain/entity"
)

// MetricsRecorder records relay activity for monitoring.
type MetricsRecorder interface {
	RecordSubscription(lotName string)
	RecordDelivery(outcome entity.DeliveryOutcome)
	RecordDispatch(state entity.DispatchState, duration time.Duration)
	RecordLookup(status entity.LookupStatus)
	RecordStoreReadFailure(operation string)
}
