// Package model holds the record layouts stored in the realtime database.
package model

import (
	"encoding/json"
	"time"

	"bootwatcher/internal/domain/entity"
)

// TimestampLayout matches JavaScript's Date.toISOString, which earlier
// clients used when writing records directly.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// SubscriptionsPath is the database node holding subscription records.
const SubscriptionsPath = "phoneNumbers"

// RecordTime is written as an ISO string. It reads back from an ISO string
// or from epoch milliseconds; any other value yields the zero time.
type RecordTime time.Time

// MarshalJSON writes the time in TimestampLayout.
func (t RecordTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampLayout))
}

// UnmarshalJSON never fails on a well-formed JSON value.
func (t *RecordTime) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			*t = RecordTime{}
			return nil
		}
		*t = RecordTime(parsed)
	case float64:
		*t = RecordTime(time.UnixMilli(int64(v)).UTC())
	default:
		*t = RecordTime{}
	}

	return nil
}

// SubscriptionRecord is a subscription as stored under phoneNumbers/<pushId>.
type SubscriptionRecord struct {
	PhoneNumber  string     `json:"phoneNumber"`
	ParkingLot   string     `json:"parkingLot"`
	ParkingLotID string     `json:"parkingLotId,omitempty"`
	Timestamp    RecordTime `json:"timestamp"`
}

// FromSubscriptionDomain converts a domain subscription into its stored form.
func FromSubscriptionDomain(s *entity.Subscription) *SubscriptionRecord {
	return &SubscriptionRecord{
		PhoneNumber:  s.PhoneNumber,
		ParkingLot:   s.ParkingLot,
		ParkingLotID: s.ParkingLotID,
		Timestamp:    RecordTime(s.Timestamp),
	}
}

// ToDomain converts a stored record into a domain subscription. A zero
// timestamp falls inside no count window.
func (r *SubscriptionRecord) ToDomain(id string) *entity.Subscription {
	return &entity.Subscription{
		ID:           id,
		PhoneNumber:  r.PhoneNumber,
		ParkingLot:   r.ParkingLot,
		ParkingLotID: r.ParkingLotID,
		Timestamp:    time.Time(r.Timestamp),
	}
}
